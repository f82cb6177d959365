package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidAuthPayload = errors.New("respuesta de auth sin id ni email resolubles")
	ErrSessionCleared     = errors.New("la sesión fue limpiada durante la operación")
	ErrBranchRequired     = errors.New("se requiere una sucursal concreta")
)
