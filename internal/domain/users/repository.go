package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	// GetByEmail espera el email ya normalizado (NormalizeEmail).
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
