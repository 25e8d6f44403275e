package storage

import (
	"sync"

	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// Aserción en compilación: MemoryStore implementa el puerto de persistencia.
var _ repository.Store = (*MemoryStore)(nil)

// MemoryStore implementación en memoria del Store, para tests y corridas
// efímeras. Misma semántica que el store persistente: siembra en la primera
// carga de productos y reemplaza la colección completa en cada escritura.
type MemoryStore struct {
	mu       sync.Mutex
	products []entity.Product
	alerts   []entity.StockAlert
	seeded   bool
}

// NewMemoryStore crea un store vacío (sin sembrar).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadProducts devuelve los productos, sembrando el dataset de demostración
// en la primera carga.
func (s *MemoryStore) LoadProducts() ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		s.products = seedProducts()
		s.seeded = true
	}
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// LoadAlerts devuelve las alertas; sin siembra.
func (s *MemoryStore) LoadAlerts() ([]entity.StockAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockAlert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

// SaveProducts reemplaza la colección completa de productos.
func (s *MemoryStore) SaveProducts(products []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]entity.Product, len(products))
	copy(s.products, products)
	// Una escritura explícita cuenta como colección existente: no volver a
	// sembrar encima de lo guardado.
	s.seeded = true
	return nil
}

// SaveAlerts reemplaza la colección completa de alertas.
func (s *MemoryStore) SaveAlerts(alerts []entity.StockAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = make([]entity.StockAlert, len(alerts))
	copy(s.alerts, alerts)
	return nil
}
