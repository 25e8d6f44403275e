package repository

import "github.com/tu-usuario/inventory-alerts/internal/domain/entity"

// Store define el puerto de persistencia clave-valor para las dos
// colecciones del sistema (DIP). Cada colección vive bajo una clave propia y
// toda escritura reemplaza la colección completa de forma síncrona; no hay
// actualizaciones parciales.
//
// LoadProducts siembra el dataset de demostración la primera vez (clave
// ausente), persistiéndolo antes de devolverlo: un store vacío es
// indistinguible de un store recién sembrado. LoadAlerts no siembra nada y
// devuelve la secuencia vacía si la clave no existe.
type Store interface {
	LoadProducts() ([]entity.Product, error)
	LoadAlerts() ([]entity.StockAlert, error)
	SaveProducts(products []entity.Product) error
	SaveAlerts(alerts []entity.StockAlert) error
}
