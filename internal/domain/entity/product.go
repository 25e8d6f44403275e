package entity

import "time"

// Product representa un producto del inventario con su stock actual y su
// umbral mínimo. LastUpdated se sella en cada edición y en cada corrida del
// chequeo de stock (incluso si el producto no cambió).
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"` // texto libre, sin unicidad garantizada
	CurrentStock int       `json:"currentStock"`
	MinStock     int       `json:"minStock"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// BelowMinimum indica si el producto está por debajo de su umbral mínimo.
func (p Product) BelowMinimum() bool {
	return p.CurrentStock < p.MinStock
}
