package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tu-usuario/inventory-alerts/internal/application/usecase"
	"github.com/tu-usuario/inventory-alerts/internal/domain/repository"
	"github.com/tu-usuario/inventory-alerts/internal/infrastructure/notify"
	"github.com/tu-usuario/inventory-alerts/internal/infrastructure/storage"
	"github.com/tu-usuario/inventory-alerts/internal/scheduler"
	"github.com/tu-usuario/inventory-alerts/pkg/config"
	"github.com/tu-usuario/inventory-alerts/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store persistente (archivo bbolt) o en memoria si no hay ruta.
	var store repository.Store
	if cfg.Storage.Path != "" {
		boltStore, err := storage.NewBoltStore(cfg.Storage.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento")
		}
		defer boltStore.Close()
		store = boltStore
		log.Info().Str("path", cfg.Storage.Path).Msg("almacenamiento local abierto")
	} else {
		store = storage.NewMemoryStore()
		log.Warn().Msg("sin STORAGE_PATH: usando almacenamiento en memoria (datos efímeros)")
	}

	notifier := notify.NewLogNotifier(log)
	alertUC := usecase.NewAlertUseCase(store, notifier)
	productUC := usecase.NewProductUseCase(store, alertUC, notifier)
	checkUC := usecase.NewStockCheckUseCase(productUC, alertUC, log)

	sched := scheduler.New(checkUC, cfg.Scheduler.EffectiveInterval(), cfg.Scheduler.Tick, log)
	sched.Start()
	defer sched.Stop()

	// Reporte periódico del estado del scheduler, el análogo de la tarjeta
	// de progreso de la interfaz.
	statusTicker := time.NewTicker(10 * time.Second)
	defer statusTicker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-statusTicker.C:
			st := sched.Status()
			log.Info().
				Bool("running", st.Running).
				Int("percent", st.Percent).
				Str("remaining", st.Remaining).
				Time("last_run", st.LastRun).
				Msg("estado del scheduler")
		case <-quit:
			log.Info().Msg("apagando aplicación")
			return
		}
	}
}
