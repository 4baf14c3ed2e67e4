package auth

import (
	"context"
	"strings"
	"time"

	"dog-walking-app/internal/domain/access"
	"dog-walking-app/internal/domain/users"
	portauth "dog-walking-app/internal/ports/auth"
	"dog-walking-app/internal/ports/hash"

	"github.com/google/uuid"
)

type Service struct {
	users  users.Repository
	hasher hash.PasswordHasher
	tokens portauth.TokenIssuer
	now    func() time.Time
}

func NewService(repo users.Repository, hasher hash.PasswordHasher, tokens portauth.TokenIssuer) *Service {
	return &Service{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     access.Role
	Phone    string
	Address  string
}

// Register es el signup abierto. Solo owner o walker: una cuenta admin
// jamás se obtiene por auto-registro (sale del seed o de otro admin).
func (s *Service) Register(ctx context.Context, in RegisterInput) (users.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := users.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return users.User{}, "", access.ErrInvalid
	}

	role := in.Role
	if role == "" {
		role = access.RoleOwner
	}
	if role != access.RoleOwner && role != access.RoleWalker {
		return users.User{}, "", access.ErrInvalid
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return users.User{}, "", access.ErrConflict
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return users.User{}, "", err
	}

	now := s.now()
	u := users.User{
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

	if err := s.users.Create(ctx, u); err != nil {
		return users.User{}, "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return users.User{}, "", err
	}
	return u, token, nil
}

// Login autentica email+password y emite un token. Email desconocido y
// password incorrecto responden el mismo error opaco.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, string, error) {
	email = users.NormalizeEmail(email)
	if email == "" || password == "" {
		return users.User{}, "", access.ErrUnauthenticated
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return users.User{}, "", access.ErrUnauthenticated
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return users.User{}, "", access.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return users.User{}, "", err
	}
	return u, token, nil
}

// Me devuelve el registro vivo del principal autenticado.
func (s *Service) Me(ctx context.Context, p access.Principal) (users.User, error) {
	u, err := s.users.GetByID(ctx, p.ID)
	if err != nil {
		// El usuario desapareció entre el resolve y acá: fail closed.
		return users.User{}, access.ErrUnauthenticated
	}
	return u, nil
}
