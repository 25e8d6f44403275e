package usecase

import (
	"time"

	"github.com/tu-usuario/inventory-alerts/pkg/logger"
)

// StockCheckUseCase es el chequeo periódico de stock: recorre todos los
// productos, levanta o refresca alertas para los que están bajo su umbral y
// sella LastUpdated de todos (reescritura completa, no parche parcial). Es el
// único punto de entrada que crea alertas nuevas; lo invoca el scheduler o un
// disparo manual del operador.
type StockCheckUseCase struct {
	products *ProductUseCase
	alerts   *AlertUseCase
	log      *logger.Logger
}

// NewStockCheckUseCase construye el caso de uso de chequeo.
func NewStockCheckUseCase(products *ProductUseCase, alerts *AlertUseCase, log *logger.Logger) *StockCheckUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockCheckUseCase{products: products, alerts: alerts, log: log}
}

// Run ejecuta una pasada completa y devuelve cuántos productos quedaron bajo
// su umbral. Los productos por encima del umbral no tocan sus alertas: una
// alerta abierta de un producto ya repuesto queda tal cual hasta que el
// operador la resuelva.
func (uc *StockCheckUseCase) Run() (int, error) {
	products, err := uc.products.List()
	if err != nil {
		return 0, err
	}

	lowStock := 0
	for _, p := range products {
		if !p.BelowMinimum() {
			continue
		}
		if err := uc.alerts.RaiseOrUpdate(p.ID); err != nil {
			return lowStock, err
		}
		lowStock++
	}

	if err := uc.products.stampAll(time.Now()); err != nil {
		return lowStock, err
	}

	if lowStock == 0 {
		uc.log.Info().Msg("chequeo de stock completado: todos los productos tienen stock suficiente")
	} else {
		uc.log.Info().Int("low_stock", lowStock).Msg("chequeo de stock completado: productos bajo el umbral")
	}
	return lowStock, nil
}
