package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidDates    = errors.New("la fecha de fabricación debe ser anterior a la fecha de vencimiento")
	ErrInvalidPage     = errors.New("parámetros de paginación inválidos")
	ErrInvalidProvider = errors.New("el proveedor referenciado no existe")
)
