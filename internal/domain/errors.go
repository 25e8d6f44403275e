package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las operaciones de
// escritura tratan los ids desconocidos como no-op silencioso; estos
// sentinelas existen para la capa de lectura y la de almacenamiento.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrStorage      = errors.New("error de almacenamiento")
)
