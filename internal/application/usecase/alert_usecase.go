package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventory-alerts/internal/application/ports"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
)

// AlertUseCase gestiona el ciclo de vida de las alertas de stock bajo.
// Invariante central: a lo sumo una alerta sin resolver por producto; una
// señal nueva de stock bajo sobre un producto con alerta abierta refresca esa
// alerta en lugar de duplicarla. Las resueltas quedan como historial.
type AlertUseCase struct {
	mu       sync.Mutex
	store    repository.Store
	notifier ports.Notifier
}

// NewAlertUseCase construye el caso de uso. notifier puede ser
// ports.NopNotifier.
func NewAlertUseCase(store repository.Store, notifier ports.Notifier) *AlertUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &AlertUseCase{store: store, notifier: notifier}
}

// List devuelve todas las alertas persistidas, resueltas incluidas.
func (uc *AlertUseCase) List() ([]entity.StockAlert, error) {
	return uc.store.LoadAlerts()
}

// RaiseOrUpdate levanta una alerta para el producto indicado o refresca la
// que ya esté abierta. Si el id no resuelve a un producto existente, no hace
// nada. Cada invocación recarga el estado antes de decidir crear-o-refrescar,
// de modo que nunca se duplica una alerta abierta.
func (uc *AlertUseCase) RaiseOrUpdate(productID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.store.LoadProducts()
	if err != nil {
		return err
	}
	var product *entity.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil
	}

	alerts, err := uc.store.LoadAlerts()
	if err != nil {
		return err
	}
	for i := range alerts {
		if alerts[i].ProductID == productID && alerts[i].Open() {
			// Refrescar la alerta abierta sin tocar su estado.
			alerts[i].CurrentStock = product.CurrentStock
			alerts[i].Timestamp = time.Now()
			return uc.store.SaveAlerts(alerts)
		}
	}

	alert := entity.StockAlert{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		CurrentStock: product.CurrentStock,
		MinStock:     product.MinStock,
		Timestamp:    time.Now(),
		Status:       entity.AlertStatusNew,
	}
	alerts = append(alerts, alert)
	if err := uc.store.SaveAlerts(alerts); err != nil {
		return err
	}
	uc.notifier.Notify(
		fmt.Sprintf("Alerta: %s con stock bajo (%d/%d)", product.Name, product.CurrentStock, product.MinStock),
		ports.SeverityError,
		5*time.Second,
	)
	return nil
}

// UpdateStatus cambia el estado de una alerta. No hay máquina de estados: el
// llamador puede fijar cualquier estado en cualquier momento (la interfaz
// restringe qué botones muestra; el motor no impone transiciones). Un id
// inexistente es no-op silencioso. "resolved" es terminal en la práctica:
// ninguna operación de este servicio saca a una alerta de ahí.
func (uc *AlertUseCase) UpdateStatus(alertID string, status entity.AlertStatus) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	alerts, err := uc.store.LoadAlerts()
	if err != nil {
		return err
	}
	for i := range alerts {
		if alerts[i].ID != alertID {
			continue
		}
		alerts[i].Status = status
		if err := uc.store.SaveAlerts(alerts); err != nil {
			return err
		}
		uc.notifier.Notify(fmt.Sprintf("Alerta marcada como %s", status), ports.SeveritySuccess, 0)
		return nil
	}
	return nil
}

// removeForProduct elimina todas las alertas que referencian al producto.
// Lo usa el borrado en cascada de ProductUseCase.
func (uc *AlertUseCase) removeForProduct(productID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	alerts, err := uc.store.LoadAlerts()
	if err != nil {
		return err
	}
	filtered := alerts[:0:0]
	for _, a := range alerts {
		if a.ProductID != productID {
			filtered = append(filtered, a)
		}
	}
	return uc.store.SaveAlerts(filtered)
}
