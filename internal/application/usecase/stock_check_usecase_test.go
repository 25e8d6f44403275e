package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/internal/application/dto"
	"github.com/tu-usuario/inventory-alerts/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Chequeo periódico de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_LevantaAlertasParaProductosBajoUmbral(t *testing.T) {
	_, alertUC, checkUC, _ := buildUseCases(t)

	// Del dataset sembrado, "2" (8/10) y "4" (5/20) están bajo umbral.
	lowStock, err := checkUC.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, lowStock)

	alerts, err := alertUC.List()
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	byProduct := map[string]entity.StockAlert{}
	for _, a := range alerts {
		byProduct[a.ProductID] = a
	}

	alertB := byProduct["2"]
	assert.Equal(t, entity.AlertStatusNew, alertB.Status)
	assert.Equal(t, 8, alertB.CurrentStock)
	assert.Equal(t, 10, alertB.MinStock)

	alertD := byProduct["4"]
	assert.Equal(t, 5, alertD.CurrentStock)
	assert.Equal(t, 20, alertD.MinStock)
}

func TestRun_ExactamenteUnaAlertaAbiertaPorProducto(t *testing.T) {
	productUC, alertUC, checkUC, _ := buildUseCases(t)

	_, err := checkUC.Run()
	require.NoError(t, err)
	_, err = checkUC.Run()
	require.NoError(t, err)

	products, err := productUC.List()
	require.NoError(t, err)
	alerts, err := alertUC.List()
	require.NoError(t, err)

	for _, p := range products {
		open := 0
		for _, a := range alerts {
			if a.ProductID == p.ID && a.Open() {
				open++
			}
		}
		if p.BelowMinimum() {
			assert.Equal(t, 1, open, "producto %s bajo umbral debe tener exactamente una alerta abierta", p.ID)
		} else {
			assert.Zero(t, open, "producto %s sobre umbral no debe tener alertas abiertas", p.ID)
		}
	}
}

func TestRun_SellaLastUpdatedDeTodosLosProductos(t *testing.T) {
	productUC, _, checkUC, _ := buildUseCases(t)

	before := time.Now()
	_, err := checkUC.Run()
	require.NoError(t, err)

	products, err := productUC.List()
	require.NoError(t, err)
	for _, p := range products {
		// Incluso los productos sobre umbral reciben el sello: la interfaz
		// lo lee como "última vez verificado".
		assert.False(t, p.LastUpdated.Before(before),
			"producto %s debe quedar sellado por la corrida aunque no haya cambiado", p.ID)
	}
}

func TestRun_ProductoRepuesto_NoTocaSuAlertaAbierta(t *testing.T) {
	productUC, alertUC, checkUC, _ := buildUseCases(t)

	_, err := checkUC.Run()
	require.NoError(t, err)

	alerts, err := alertUC.List()
	require.NoError(t, err)
	var stale entity.StockAlert
	for _, a := range alerts {
		if a.ProductID == "2" {
			stale = a
		}
	}
	require.NotEmpty(t, stale.ID)

	// El producto se repone por encima del umbral; su alerta abierta queda
	// tal cual (ni refresco ni duplicado) hasta que alguien la resuelva.
	_, err = productUC.Update("2", dto.UpdateProductRequest{CurrentStock: intPtr(20)})
	require.NoError(t, err)

	lowStock, err := checkUC.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, lowStock, "solo \"4\" sigue bajo umbral")

	alerts, err = alertUC.List()
	require.NoError(t, err)
	count := 0
	for _, a := range alerts {
		if a.ProductID == "2" {
			count++
			assert.Equal(t, stale.ID, a.ID)
			assert.Equal(t, stale.CurrentStock, a.CurrentStock, "la alerta vieja no debe refrescarse")
			assert.Equal(t, stale.Timestamp.Unix(), a.Timestamp.Unix())
			assert.Equal(t, entity.AlertStatusNew, a.Status)
		}
	}
	assert.Equal(t, 1, count)
}

func TestRun_SinProductosBajoUmbral(t *testing.T) {
	productUC, alertUC, checkUC, _ := buildUseCases(t)

	// Reponer los dos productos sembrados bajo umbral.
	_, err := productUC.Update("2", dto.UpdateProductRequest{CurrentStock: intPtr(50)})
	require.NoError(t, err)
	_, err = productUC.Update("4", dto.UpdateProductRequest{CurrentStock: intPtr(50)})
	require.NoError(t, err)

	lowStock, err := checkUC.Run()
	require.NoError(t, err)
	assert.Zero(t, lowStock)

	alerts, err := alertUC.List()
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestRun_StockIgualAlMinimo_NoEsBajoUmbral(t *testing.T) {
	productUC, alertUC, checkUC, _ := buildUseCases(t)

	created, err := productUC.Create(dto.CreateProductRequest{
		Name: "X", SKU: "SKU1", CurrentStock: 5, MinStock: 5,
	})
	require.NoError(t, err)

	_, err = checkUC.Run()
	require.NoError(t, err)

	alerts, err := alertUC.List()
	require.NoError(t, err)
	for _, a := range alerts {
		assert.NotEqual(t, created.ID, a.ProductID, "stock == mínimo no dispara alerta")
	}
}
