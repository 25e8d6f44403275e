package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Scheduler SchedulerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StorageConfig configuración del almacenamiento clave-valor local.
// Path apunta al archivo bbolt; vacío significa usar el store en memoria
// (datos efímeros, útil en demos y tests).
type StorageConfig struct {
	Path string
}

// SchedulerConfig configuración del chequeo periódico de stock.
// CheckInterval es el intervalo nominal de producción; TimeScale lo divide
// para acelerar demos (5m con escala 10 = el intervalo de demo de 30s;
// escala 1 en despliegues reales). Tick es la granularidad del conteo
// regresivo.
type SchedulerConfig struct {
	CheckInterval time.Duration
	TimeScale     int
	Tick          time.Duration
}

// EffectiveInterval devuelve el intervalo real entre corridas:
// CheckInterval dividido por TimeScale.
func (c SchedulerConfig) EffectiveInterval() time.Duration {
	scale := c.TimeScale
	if scale <= 0 {
		scale = 1
	}
	return c.CheckInterval / time.Duration(scale)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, STORAGE_PATH, CHECK_INTERVAL, TIME_SCALE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventory-alerts"),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "inventory.db"),
		},
		Scheduler: SchedulerConfig{
			CheckInterval: getDuration(v, "CHECK_INTERVAL", 5*time.Minute),
			TimeScale:     getInt(v, "TIME_SCALE", 1),
			Tick:          getDuration(v, "SCHEDULER_TICK", time.Second),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d := v.GetDuration(key); d > 0 {
			return d
		}
		return def
	}
	return def
}
