package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dog-walking-app/internal/domain/access"
	"dog-walking-app/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		// Listado owner-scoped; ?all=true amplía solo para admins
		dr.Get("/", listDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))

		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

type createDogRequest struct {
	Name                string `json:"name"`
	Breed               string `json:"breed"`
	Age                 int    `json:"age"`
	WalkingInstructions string `json:"walking_instructions"`
	EmergencyContact    string `json:"emergency_contact"`
	MedicalNotes        string `json:"medical_notes"`
	// owner_id / is_active del body se ignoran: los fija el core.
}

type updateDogRequest struct {
	// Punteros para update parcial: nil = no tocar.
	Name                *string `json:"name"`
	Breed               *string `json:"breed"`
	Age                 *int    `json:"age"`
	WalkingInstructions *string `json:"walking_instructions"`
	EmergencyContact    *string `json:"emergency_contact"`
	MedicalNotes        *string `json:"medical_notes"`
}

type dogResponse struct {
	ID                  string    `json:"id"`
	OwnerID             string    `json:"owner_id"`
	Name                string    `json:"name"`
	Breed               string    `json:"breed"`
	Age                 int       `json:"age"`
	WalkingInstructions string    `json:"walking_instructions,omitempty"`
	EmergencyContact    string    `json:"emergency_contact"`
	MedicalNotes        string    `json:"medical_notes,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		all := r.URL.Query().Get("all") == "true"

		items, err := svc.List(r.Context(), p, all)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), p, CreateInput{
			Name:                req.Name,
			Breed:               req.Breed,
			Age:                 req.Age,
			WalkingInstructions: req.WalkingInstructions,
			EmergencyContact:    req.EmergencyContact,
			MedicalNotes:        req.MedicalNotes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := svc.Get(r.Context(), p, chi.URLParam(r, "dogID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), p, chi.URLParam(r, "dogID"), UpdateInput{
			Name:                req.Name,
			Breed:               req.Breed,
			Age:                 req.Age,
			WalkingInstructions: req.WalkingInstructions,
			EmergencyContact:    req.EmergencyContact,
			MedicalNotes:        req.MedicalNotes,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "dogID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:                  d.ID,
		OwnerID:             d.OwnerID,
		Name:                d.Name,
		Breed:               d.Breed,
		Age:                 d.Age,
		WalkingInstructions: d.WalkingInstructions,
		EmergencyContact:    d.EmergencyContact,
		MedicalNotes:        d.MedicalNotes,
		IsActive:            d.IsActive,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

// Duplicado intencional por módulo (ver nota en users/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, access.ErrUnauthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, access.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, access.ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	case errors.Is(err, access.ErrInvalid):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
