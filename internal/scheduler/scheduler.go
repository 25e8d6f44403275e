package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/inventory-alerts/pkg/logger"
)

// Job es el trabajo que el scheduler dispara en cada corrida: el chequeo de
// stock. Devuelve cuántos productos quedaron bajo su umbral.
type Job interface {
	Run() (int, error)
}

// Status vista de solo lectura del estado del scheduler para la capa de
// presentación.
type Status struct {
	Running   bool
	LastRun   time.Time // cero = nunca corrió
	NextRun   time.Time // cero = sin corrida programada
	Percent   int       // 0-100 transcurrido hacia la próxima corrida
	Remaining string    // conteo regresivo "MM:SS"; "--:--" si está detenido
}

// Scheduler dispara el Job de forma periódica y cooperativa. Máquina de dos
// estados (detenido/corriendo): Start ejecuta el Job de inmediato, programa
// la próxima corrida a now+interval y arranca un tick recurrente; cada tick
// recalcula el progreso y, si la hora programada ya pasó, vuelve a ejecutar
// el Job reprogramando desde el nuevo now. Stop cancela el tick y borra la
// corrida programada.
type Scheduler struct {
	job      Job
	interval time.Duration
	tick     time.Duration
	log      *logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	running bool
	lastRun time.Time
	nextRun time.Time
	stop    chan struct{}
}

// New construye el scheduler. interval es el intervalo efectivo entre
// corridas (ya escalado para demos); tick la granularidad del conteo
// regresivo, un segundo si se pasa cero.
func New(job Job, interval, tick time.Duration, log *logger.Logger) *Scheduler {
	if tick <= 0 {
		tick = time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		job:      job,
		interval: interval,
		tick:     tick,
		log:      log,
		now:      time.Now,
	}
}

// Start pasa de detenido a corriendo: ejecuta el Job una vez de inmediato y
// arranca el tick recurrente. Si ya está corriendo, no hace nada.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	s.log.Info().Dur("interval", s.interval).Msg("scheduler iniciado")
	s.runJob()

	go s.loop(stop)
}

// Stop pasa de corriendo a detenido: cancela el tick y borra la próxima
// corrida. Ningún Job se ejecuta mientras esté detenido.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.nextRun = time.Time{}
	close(s.stop)
	s.mu.Unlock()

	s.log.Info().Msg("scheduler detenido")
}

// Tick evalúa una vez el reloj contra la corrida programada y ejecuta el Job
// si ya venció. El loop interno lo llama cada tick; también puede invocarse
// directamente para avanzar el scheduler de forma manual.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	due := s.running && !s.nextRun.IsZero() && !s.now().Before(s.nextRun)
	s.mu.Unlock()
	if due {
		s.runJob()
	}
}

// Status devuelve el estado de solo lectura: si corre, última corrida,
// porcentaje transcurrido hacia la próxima (se reinicia a 0 tras cada
// corrida) y el conteo regresivo formateado.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Running:   s.running,
		LastRun:   s.lastRun,
		NextRun:   s.nextRun,
		Remaining: "--:--",
	}
	if !s.running || s.nextRun.IsZero() || s.interval <= 0 {
		return st
	}

	now := s.now()
	left := s.nextRun.Sub(now)
	if left < 0 {
		left = 0
	}
	elapsed := s.interval - left
	percent := int(elapsed * 100 / s.interval)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	secondsLeft := int(left.Seconds())
	st.Percent = percent
	st.Remaining = fmt.Sprintf("%02d:%02d", secondsLeft/60, secondsLeft%60)
	return st
}

func (s *Scheduler) loop(stop chan struct{}) {
	t := time.NewTicker(s.tick)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.Tick()
		}
	}
}

// runJob ejecuta el Job y reprograma la próxima corrida desde el now
// posterior a la ejecución (mientras siga corriendo).
func (s *Scheduler) runJob() {
	lowStock, err := s.job.Run()

	s.mu.Lock()
	now := s.now()
	s.lastRun = now
	if s.running {
		s.nextRun = now.Add(s.interval)
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("corrida del chequeo de stock falló")
		return
	}
	s.log.Debug().Int("low_stock", lowStock).Msg("corrida del chequeo de stock completada")
}
