package dogs

import "time"

// Dog representa el perfil de un perro registrado para paseos.
type Dog struct {
	ID string

	// OwnerID referencia al usuario dueño. Se fija en el alta con el id del
	// caller y no se reasigna nunca.
	OwnerID string

	Name  string
	Breed string
	Age   int // años, >= 0

	WalkingInstructions string
	EmergencyContact    string // requerido
	MedicalNotes        string

	// IsActive implementa el soft delete: true en el alta, false al borrar.
	// La fila queda; nunca se borra físicamente ni se reactiva.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
