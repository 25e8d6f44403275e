package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// Aserción en compilación: BoltStore implementa el puerto de persistencia.
var _ repository.Store = (*BoltStore)(nil)

// bucketName bucket único donde viven las dos claves de colección.
const bucketName = "inventory"

// BoltStore persistencia clave-valor local sobre bbolt: un archivo, un
// bucket, dos claves (inventory_products, inventory_alerts), cada una con la
// colección completa serializada como arreglo JSON. Cada escritura reemplaza
// la clave entera dentro de una transacción, de modo que la colección es
// atómica a nivel de clave. Lecturas y escrituras son síncronas.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore abre (o crea) el archivo de datos y garantiza el bucket.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir almacenamiento %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("crear bucket %s: %w", bucketName, err)
	}
	return &BoltStore{db: db}, nil
}

// Close cierra el archivo de datos.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// LoadProducts devuelve los productos persistidos. Si la clave no existe
// todavía, siembra el dataset de demostración y lo persiste antes de
// devolverlo: la ausencia del store es indistinguible de vacío-y-sembrado.
func (s *BoltStore) LoadProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		data := b.Get([]byte(productsKey))
		if data == nil {
			products = seedProducts()
			encoded, err := json.Marshal(products)
			if err != nil {
				return err
			}
			return b.Put([]byte(productsKey), encoded)
		}
		return json.Unmarshal(data, &products)
	})
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	return products, nil
}

// LoadAlerts devuelve las alertas persistidas, o la secuencia vacía si la
// clave no existe. Sin siembra.
func (s *BoltStore) LoadAlerts() ([]entity.StockAlert, error) {
	alerts := []entity.StockAlert{}
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(alertsKey))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &alerts)
	})
	if err != nil {
		return nil, fmt.Errorf("cargar alertas: %w", err)
	}
	return alerts, nil
}

// SaveProducts reemplaza la colección completa de productos.
func (s *BoltStore) SaveProducts(products []entity.Product) error {
	return s.put(productsKey, products)
}

// SaveAlerts reemplaza la colección completa de alertas.
func (s *BoltStore) SaveAlerts(alerts []entity.StockAlert) error {
	return s.put(alertsKey, alerts)
}

func (s *BoltStore) put(key string, collection any) error {
	encoded, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), encoded)
	})
	if err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}
