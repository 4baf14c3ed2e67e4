package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"dog-walking-app/internal/domain/access"
	"dog-walking-app/internal/ports/hash"

	"github.com/google/uuid"
)

const tempPasswordBytes = 8

type Service struct {
	repo   Repository
	hasher hash.PasswordHasher
	now    func() time.Time
}

func NewService(repo Repository, hasher hash.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

// List devuelve todos los usuarios. Admin-only: acá no hay self-bypass.
func (s *Service) List(ctx context.Context, p access.Principal) ([]User, error) {
	if !access.CanListAllUsers(p) {
		return nil, access.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, p access.Principal, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, access.ErrInvalid
	}
	if !access.CanAccessAdminOrSelf(p, id) {
		return User{}, access.ErrForbidden
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, access.ErrNotFound
	}
	return u, nil
}

type CreateInput struct {
	Name    string
	Email   string
	Role    access.Role
	Phone   string
	Address string
}

// Create da de alta un usuario con password temporal (alta administrativa,
// no signup). Devuelve el usuario y el password temporal en claro, una
// única vez; almacenado queda solo el hash.
func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (User, string, error) {
	if !access.IsAdmin(p) {
		return User{}, "", access.ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return User{}, "", access.ErrInvalid
	}

	role := in.Role
	if role == "" {
		role = access.RoleOwner
	}
	if !access.ValidRole(role) {
		return User{}, "", access.ErrInvalid
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, "", access.ErrConflict
	}

	temp, err := randomTempPassword()
	if err != nil {
		return User{}, "", err
	}
	hashed, err := s.hasher.Hash(temp)
	if err != nil {
		return User{}, "", err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, "", err
	}
	return u, temp, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name     *string
	Email    *string
	Password *string
	Role     *access.Role
	Phone    *string
	Address  *string
}

func (s *Service) Update(ctx context.Context, p access.Principal, id string, in UpdateInput) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, access.ErrInvalid
	}
	if !access.CanAccessAdminOrSelf(p, id) {
		return User{}, access.ErrForbidden
	}

	// El guard de role va ANTES de cualquier otro campo: un request no-admin
	// que incluya role se rechaza completo, aunque el resto sea self-update legal.
	if in.Role != nil && !access.CanMutateRole(p) {
		return User{}, access.ErrForbidden
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, access.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return User{}, access.ErrInvalid
		}
		u.Name = name
	}
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		if email == "" {
			return User{}, access.ErrInvalid
		}
		if email != u.Email {
			if _, err := s.repo.GetByEmail(ctx, email); err == nil {
				return User{}, access.ErrConflict
			}
			u.Email = email
		}
	}
	if in.Role != nil {
		if !access.ValidRole(*in.Role) {
			return User{}, access.ErrInvalid
		}
		u.Role = *in.Role
	}
	if in.Password != nil {
		pw := strings.TrimSpace(*in.Password)
		if pw == "" {
			return User{}, access.ErrInvalid
		}
		hashed, err := s.hasher.Hash(pw)
		if err != nil {
			return User{}, err
		}
		u.PasswordHash = hashed
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		u.Address = strings.TrimSpace(*in.Address)
	}

	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Delete borra la cuenta (hard delete). Admin-only y nunca la propia.
func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return access.ErrInvalid
	}
	if !access.IsAdmin(p) {
		return access.ErrForbidden
	}
	if access.IsSelf(p, id) {
		// Auto-borrado prohibido para cualquier rol.
		return access.ErrInvalid
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return access.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func randomTempPassword() (string, error) {
	b := make([]byte, tempPasswordBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
