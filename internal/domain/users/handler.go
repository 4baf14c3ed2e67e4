package users

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
	r.Route("/users", func(ur chi.Router) {
		// Listado y alta: admin-only (lo decide el service)
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))

		// Registro puntual: admin o self
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// El password temporal sale una sola vez, en el alta.
type createUserResponse struct {
	userResponse
	TempPassword string `json:"temp_password"`
}

type updateUserRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	// Campos desconocidos (id, created_at, etc.) se ignoran: inmutables.
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), p)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.Get(r.Context(), p, chi.URLParam(r, "userID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, temp, err := svc.Create(r.Context(), p, CreateInput{
			Name:    req.Name,
			Email:   req.Email,
			Role:    access.Role(req.Role),
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createUserResponse{
			userResponse: toUserResponse(u),
			TempPassword: temp,
		})
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var role *access.Role
		if req.Role != nil {
			v := access.Role(*req.Role)
			role = &v
		}

		u, err := svc.Update(r.Context(), p, chi.URLParam(r, "userID"), UpdateInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     role,
			Phone:    req.Phone,
			Address:  req.Address,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), p, chi.URLParam(r, "userID")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// writeJSON/writeDomainError están duplicados intencionalmente en los handlers
// de cada módulo (users/dogs/auth) para no crear helpers compartidos antes de
// tiempo. Si aparece un cuarto módulo, recién conviene extraerlos.
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
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, access.ErrConflict):
		http.Error(w, "email already in use", http.StatusConflict)
	case errors.Is(err, access.ErrInvalid):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
