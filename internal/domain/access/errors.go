package access

import "errors"

// Taxonomía de errores del core. Cada servicio los devuelve tal cual
// (con errors.Is en los handlers); nunca se colapsan en un error genérico.
// Unauthenticated y Forbidden no llevan detalle: no filtramos qué check falló.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalid         = errors.New("invalid input")
)
