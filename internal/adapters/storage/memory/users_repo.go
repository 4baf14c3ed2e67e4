package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dog-walking-app/internal/domain/users"
)

var (
	ErrNotFound = errors.New("not found")
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, ErrNotFound
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}

	// Más recientes primero.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; !exists {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
