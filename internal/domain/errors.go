package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidOperation  = errors.New("operación no permitida sobre el stock")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrConflict          = errors.New("conflicto con el estado actual")
)
