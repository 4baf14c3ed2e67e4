package users

import (
	"strings"
	"time"

	"dog-walking-app/internal/domain/access"
)

// User representa una cuenta del sistema (owner, walker o admin).
type User struct {
	ID    string
	Name  string
	Email string // normalizado (ver NormalizeEmail)

	// PasswordHash es el output del hasher. Nunca se serializa hacia afuera:
	// los DTOs de respuesta no lo incluyen.
	PasswordHash string

	// Role es mutable solo vía un request de admin, nunca por el propio sujeto.
	Role access.Role

	Phone   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal proyecta el usuario a la identidad que consumen las policies.
func (u User) Principal() access.Principal {
	return access.Principal{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// NormalizeEmail aplica la regla de unicidad: trim + lowercase.
// La comparación de emails es case-insensitive en todo el sistema.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
