package entity

import "time"

// AlertStatus estado del ciclo de vida de una alerta de stock.
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "new"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// StockAlert señala que un producto cayó por debajo de su umbral mínimo.
// ProductID es una referencia débil (el producto puede borrarse; el borrado
// cascadea y elimina sus alertas). ProductName y los valores de stock son una
// foto desnormalizada tomada al momento de crear o refrescar la alerta.
// Las alertas resueltas son historial inmutable: nunca se reutilizan ni se
// podan.
type StockAlert struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"productId"`
	ProductName  string      `json:"productName"`
	CurrentStock int         `json:"currentStock"`
	MinStock     int         `json:"minStock"`
	Timestamp    time.Time   `json:"timestamp"` // última vez tocada
	Status       AlertStatus `json:"status"`
}

// Open indica si la alerta sigue sin resolver.
func (a StockAlert) Open() bool {
	return a.Status != AlertStatusResolved
}
