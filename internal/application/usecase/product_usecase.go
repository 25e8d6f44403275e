package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/application/ports"
	"github.com/tu-usuario/inventory-alerts/internal/domain"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El borrado cascadea a las
// alertas del producto; las operaciones de escritura sobre ids inexistentes
// son no-op silencioso (la capa de presentación valida existencia aparte).
type ProductUseCase struct {
	mu       sync.Mutex
	store    repository.Store
	alerts   *AlertUseCase
	notifier ports.Notifier
}

// NewProductUseCase construye el caso de uso. alerts se usa solo para el
// borrado en cascada; notifier puede ser ports.NopNotifier.
func NewProductUseCase(store repository.Store, alerts *AlertUseCase, notifier ports.Notifier) *ProductUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &ProductUseCase{store: store, alerts: alerts, notifier: notifier}
}

// List devuelve todos los productos persistidos (sembrando el dataset de
// demostración en la primera carga).
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.store.LoadProducts()
}

// GetByID obtiene un producto por id. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	products, err := uc.store.LoadProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create registra un producto nuevo con id UUID y LastUpdated sellado al
// momento de la llamada, y notifica el alta al operador.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts()
	if err != nil {
		return nil, err
	}
	product := entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		LastUpdated:  time.Now(),
	}
	products = append(products, product)
	if err := uc.store.SaveProducts(products); err != nil {
		return nil, err
	}
	uc.notifier.Notify(fmt.Sprintf("Producto %s agregado", product.Name), ports.SeveritySuccess, 0)
	return &product, nil
}

// Update edita un producto existente sellando LastUpdated. Si el id no
// resuelve, no hace nada y devuelve (nil, nil).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		if in.Name != nil {
			products[i].Name = *in.Name
		}
		if in.SKU != nil {
			products[i].SKU = *in.SKU
		}
		if in.CurrentStock != nil {
			products[i].CurrentStock = *in.CurrentStock
		}
		if in.MinStock != nil {
			products[i].MinStock = *in.MinStock
		}
		products[i].LastUpdated = time.Now()
		if err := uc.store.SaveProducts(products); err != nil {
			return nil, err
		}
		p := products[i]
		return &p, nil
	}
	return nil, nil
}

// Delete elimina un producto y, en cascada, todas las alertas que lo
// referencian. Un id inexistente deja ambas colecciones como estaban.
func (uc *ProductUseCase) Delete(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts()
	if err != nil {
		return err
	}
	filtered := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if err := uc.store.SaveProducts(filtered); err != nil {
		return err
	}
	return uc.alerts.removeForProduct(id)
}

// stampAll sella LastUpdated de todos los productos (cambiados o no) y
// reescribe la colección completa. Lo usa el chequeo periódico: la interfaz
// lee ese sello como "última vez verificado".
func (uc *ProductUseCase) stampAll(now time.Time) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts()
	if err != nil {
		return err
	}
	for i := range products {
		products[i].LastUpdated = now
	}
	return uc.store.SaveProducts(products)
}
