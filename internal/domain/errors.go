package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrForbidden          = errors.New("acceso denegado")
	ErrPeriodoInvalido    = errors.New("fechaInicio y fechaFin son requeridas")
	ErrFormatoNoSoportado = errors.New("formato no soportado: use pdf o excel")
)
