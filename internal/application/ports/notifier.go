package ports

import "time"

// Severity nivel de una notificación visible para el operador.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier define el puerto de salida para notificaciones al operador
// (el análogo de los toasts de la interfaz). Cualquier adaptador (log,
// consola, mock) debe implementar esta interfaz. La ausencia del sink nunca
// afecta la corrección de los datos: los casos de uso notifican después de
// persistir, no antes.
type Notifier interface {
	// Notify emite un mensaje con su severidad. duration es opcional
	// (cero = duración por defecto del adaptador).
	Notify(message string, severity Severity, duration time.Duration)
}

// NopNotifier descarta toda notificación. Útil en tests y cuando no hay
// operador presente.
type NopNotifier struct{}

// Notify no hace nada.
func (NopNotifier) Notify(string, Severity, time.Duration) {}
