package users

import (
	"context"
	"time"

	"dog-walking-app/internal/domain/access"
	"dog-walking-app/internal/ports/hash"

	"github.com/google/uuid"
)

// EnsureAdmin crea la cuenta admin inicial si el store está vacío.
// Con el alta de usuarios gateada por admin y el registro limitado a
// owner/walker, sin seed no habría forma de obtener el primer admin.
// Devuelve true si creó la cuenta.
func EnsureAdmin(ctx context.Context, repo Repository, hasher hash.PasswordHasher, email, password string) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return false, access.ErrInvalid
	}

	hashed, err := hasher.Hash(password)
	if err != nil {
		return false, err
	}

	now := time.Now()
	u := User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: hashed,
		Role:         access.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}
