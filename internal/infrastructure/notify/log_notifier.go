package notify

import (
	"time"

	"github.com/tu-usuario/inventory-alerts/internal/application/ports"
	"github.com/tu-usuario/inventory-alerts/pkg/logger"
)

// Aserción en compilación: LogNotifier implementa el puerto de notificación.
var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier adaptador de notificaciones sobre el logger estructurado: el
// análogo de los toasts de la interfaz cuando el proceso corre sin pantalla.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el adaptador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log}
}

// Notify registra el mensaje con el nivel que corresponde a su severidad.
func (n *LogNotifier) Notify(message string, severity ports.Severity, duration time.Duration) {
	ev := n.log.Info()
	if severity == ports.SeverityError {
		ev = n.log.Warn()
	}
	if duration > 0 {
		ev = ev.Dur("duration", duration)
	}
	ev.Str("severity", string(severity)).Msg(message)
}
