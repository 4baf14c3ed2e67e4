package dogs

import (
	"context"
	"time"
)

// Filter es el predicado de scoping que el storage aplica. Lo deriva el
// core a partir de la policy (ver scope.go); nunca viene del cliente.
// Campo string vacío = sin restricción.
type Filter struct {
	ID         string
	OwnerID    string
	ActiveOnly bool
}

// Patch es una mutación parcial: nil = no tocar.
type Patch struct {
	Name                *string
	Breed               *string
	Age                 *int
	WalkingInstructions *string
	EmergencyContact    *string
	MedicalNotes        *string

	// IsActive solo lo setea el propio core para el soft delete.
	IsActive *bool

	UpdatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, d Dog) error
	FindOne(ctx context.Context, f Filter) (Dog, error)
	FindMany(ctx context.Context, f Filter) ([]Dog, error)

	// UpdateMatching aplica el patch a la única fila que matchee el filtro,
	// en una sola operación atómica (el filtro de autorización y la mutación
	// no pueden separarse). Cero filas => not found del adapter.
	UpdateMatching(ctx context.Context, f Filter, p Patch) (Dog, error)
}
