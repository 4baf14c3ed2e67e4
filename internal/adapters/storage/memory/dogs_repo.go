package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dog-walking-app/internal/domain/dogs"
)

type dogRepo struct {
	mu   sync.RWMutex
	byID map[string]dogs.Dog
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogRepo) FindOne(ctx context.Context, f dogs.Filter) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.byID {
		if matches(f, d) {
			return d, nil
		}
	}
	return dogs.Dog{}, ErrNotFound
}

func (r *dogRepo) FindMany(ctx context.Context, f dogs.Filter) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.byID {
		if matches(f, d) {
			out = append(out, d)
		}
	}

	// Orden estable por created_at asc (consistencia en dev/tests)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

// UpdateMatching busca y muta bajo el mismo lock: filtro de autorización y
// mutación son una sola operación, sin ventana entre check y write.
func (r *dogRepo) UpdateMatching(ctx context.Context, f dogs.Filter, p dogs.Patch) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.byID {
		if !matches(f, d) {
			continue
		}
		applyPatch(&d, p)
		r.byID[id] = d
		return d, nil
	}
	return dogs.Dog{}, ErrNotFound
}

func matches(f dogs.Filter, d dogs.Dog) bool {
	if f.ID != "" && d.ID != f.ID {
		return false
	}
	if f.OwnerID != "" && d.OwnerID != f.OwnerID {
		return false
	}
	if f.ActiveOnly && !d.IsActive {
		return false
	}
	return true
}

func applyPatch(d *dogs.Dog, p dogs.Patch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Breed != nil {
		d.Breed = *p.Breed
	}
	if p.Age != nil {
		d.Age = *p.Age
	}
	if p.WalkingInstructions != nil {
		d.WalkingInstructions = *p.WalkingInstructions
	}
	if p.EmergencyContact != nil {
		d.EmergencyContact = *p.EmergencyContact
	}
	if p.MedicalNotes != nil {
		d.MedicalNotes = *p.MedicalNotes
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
	if !p.UpdatedAt.IsZero() {
		d.UpdatedAt = p.UpdatedAt
	}
}
