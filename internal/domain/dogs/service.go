package dogs

import (
	"context"
	"strings"
	"time"

	"dog-walking-app/internal/domain/access"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name                string
	Breed               string
	Age                 int
	WalkingInstructions string
	EmergencyContact    string
	MedicalNotes        string
}

// Create da de alta un dog para el caller. OwnerID e IsActive los fija el
// core: cualquier valor que venga del cliente para esos campos se ignora.
func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (Dog, error) {
	if p.ID == "" {
		return Dog{}, access.ErrUnauthenticated
	}

	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)
	emergency := strings.TrimSpace(in.EmergencyContact)
	if name == "" || breed == "" || emergency == "" {
		return Dog{}, access.ErrInvalid
	}
	if in.Age < 0 {
		return Dog{}, access.ErrInvalid
	}

	now := s.now()
	d := Dog{
		ID:                  uuid.NewString(),
		OwnerID:             p.ID,
		Name:                name,
		Breed:               breed,
		Age:                 in.Age,
		WalkingInstructions: strings.TrimSpace(in.WalkingInstructions),
		EmergencyContact:    emergency,
		MedicalNotes:        strings.TrimSpace(in.MedicalNotes),
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// List devuelve dogs activos bajo el filtro que permite la policy.
func (s *Service) List(ctx context.Context, p access.Principal, all bool) ([]Dog, error) {
	return s.repo.FindMany(ctx, ListFilter(p, all))
}

func (s *Service) Get(ctx context.Context, p access.Principal, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, access.ErrInvalid
	}

	d, err := s.repo.FindOne(ctx, MutateFilter(p, id))
	if err != nil {
		return Dog{}, access.ErrNotFound
	}
	return d, nil
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name                *string
	Breed               *string
	Age                 *int
	WalkingInstructions *string
	EmergencyContact    *string
	MedicalNotes        *string
}

// Update muta campos descriptivos. id, ownerId e isActive son inmutables por
// esta vía. Si el filtro scoped no matchea (no existe o el caller no es el
// owner ni admin), la respuesta es NotFound en ambos casos.
func (s *Service) Update(ctx context.Context, p access.Principal, id string, in UpdateInput) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, access.ErrInvalid
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Dog{}, access.ErrInvalid
	}
	if in.Breed != nil && strings.TrimSpace(*in.Breed) == "" {
		return Dog{}, access.ErrInvalid
	}
	if in.EmergencyContact != nil && strings.TrimSpace(*in.EmergencyContact) == "" {
		return Dog{}, access.ErrInvalid
	}
	if in.Age != nil && *in.Age < 0 {
		return Dog{}, access.ErrInvalid
	}

	patch := Patch{
		Name:                trimmed(in.Name),
		Breed:               trimmed(in.Breed),
		Age:                 in.Age,
		WalkingInstructions: trimmed(in.WalkingInstructions),
		EmergencyContact:    trimmed(in.EmergencyContact),
		MedicalNotes:        trimmed(in.MedicalNotes),
		UpdatedAt:           s.now(),
	}

	d, err := s.repo.UpdateMatching(ctx, MutateFilter(p, id), patch)
	if err != nil {
		return Dog{}, access.ErrNotFound
	}
	return d, nil
}

// Delete es el soft delete: una única mutación atómica filtrada que apaga
// isActive. Estado terminal, no hay operación que lo revierta.
func (s *Service) Delete(ctx context.Context, p access.Principal, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return access.ErrInvalid
	}

	inactive := false
	_, err := s.repo.UpdateMatching(ctx, MutateFilter(p, id), Patch{
		IsActive:  &inactive,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return access.ErrNotFound
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
