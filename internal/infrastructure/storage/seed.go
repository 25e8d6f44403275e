package storage

import (
	"time"

	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
)

// Claves bajo las que se persisten las dos colecciones, cada una como un
// arreglo JSON completo.
const (
	productsKey = "inventory_products"
	alertsKey   = "inventory_alerts"
)

// seedProducts devuelve el dataset de demostración que se siembra la primera
// vez que se cargan productos de un store vacío. Los valores son fijos; solo
// LastUpdated se sella al momento de sembrar.
func seedProducts() []entity.Product {
	now := time.Now()
	return []entity.Product{
		{ID: "1", Name: "Producto A", SKU: "PROD-001", CurrentStock: 15, MinStock: 10, LastUpdated: now},
		{ID: "2", Name: "Producto B", SKU: "PROD-002", CurrentStock: 8, MinStock: 10, LastUpdated: now},
		{ID: "3", Name: "Producto C", SKU: "PROD-003", CurrentStock: 25, MinStock: 15, LastUpdated: now},
		{ID: "4", Name: "Producto D", SKU: "PROD-004", CurrentStock: 5, MinStock: 20, LastUpdated: now},
		{ID: "5", Name: "Producto E", SKU: "PROD-005", CurrentStock: 30, MinStock: 10, LastUpdated: now},
	}
}
