package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores centinela compartidos por repositorios y servicios.
var (
	// ErrNoEncontrado indica que el registro referenciado no existe.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrConflicto indica una colisión con un registro existente (código duplicado,
	// nit en uso, registro referenciado por otras tablas).
	ErrConflicto = errors.New("conflicto con un registro existente")
	// ErrSinCambios indica que una actualización no modifica ningún campo.
	ErrSinCambios = errors.New("no hay datos para actualizar")
)

// ErrorValidacion agrupa los errores de campos de una petición. Se reporta antes
// de abrir cualquier transacción.
type ErrorValidacion struct {
	Mensajes []string
}

func (e *ErrorValidacion) Error() string {
	return strings.Join(e.Mensajes, "; ")
}

// NuevaValidacion crea un error de validación con los mensajes dados.
func NuevaValidacion(mensajes ...string) *ErrorValidacion {
	return &ErrorValidacion{Mensajes: mensajes}
}

// ErrorTransaccion envuelve la causa de una transacción fallida. La operación
// completa se revierte; la causa queda disponible para diagnóstico.
type ErrorTransaccion struct {
	Operacion string
	Causa     error
}

func (e *ErrorTransaccion) Error() string {
	return fmt.Sprintf("la transacción %s falló: %v", e.Operacion, e.Causa)
}

func (e *ErrorTransaccion) Unwrap() error {
	return e.Causa
}
