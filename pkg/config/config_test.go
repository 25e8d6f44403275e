package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-alerts/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventory-alerts", cfg.App.Name)
	assert.Equal(t, "inventory.db", cfg.Storage.Path)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.CheckInterval)
	assert.Equal(t, 1, cfg.Scheduler.TimeScale)
	assert.Equal(t, time.Second, cfg.Scheduler.Tick)
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_PATH", "/var/lib/inventory/data.db")
	t.Setenv("CHECK_INTERVAL", "1m")
	t.Setenv("TIME_SCALE", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/lib/inventory/data.db", cfg.Storage.Path)
	assert.Equal(t, time.Minute, cfg.Scheduler.CheckInterval)
	assert.Equal(t, 10, cfg.Scheduler.TimeScale)
}

func TestEffectiveInterval_DivideElIntervaloNominal(t *testing.T) {
	// El valor de demo: 5 minutos nominales con escala 10 → corridas cada
	// 30 segundos.
	sc := config.SchedulerConfig{CheckInterval: 5 * time.Minute, TimeScale: 10}
	assert.Equal(t, 30*time.Second, sc.EffectiveInterval())

	// Escala inválida o ausente → intervalo sin escalar.
	sc = config.SchedulerConfig{CheckInterval: 5 * time.Minute}
	assert.Equal(t, 5*time.Minute, sc.EffectiveInterval())

	sc = config.SchedulerConfig{CheckInterval: 5 * time.Minute, TimeScale: -3}
	assert.Equal(t, 5*time.Minute, sc.EffectiveInterval())
}
