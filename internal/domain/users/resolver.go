package users

import (
	"context"
	"strings"

	"dog-walking-app/internal/domain/access"
	portauth "dog-walking-app/internal/ports/auth"
)

// Resolver convierte el header Authorization en un principal vivo.
// Verifica el token y re-carga el usuario desde storage en CADA request:
// así un cambio de rol o un borrado de cuenta aplica de inmediato aunque
// el token siga siendo criptográficamente válido.
type Resolver struct {
	verifier portauth.TokenVerifier
	repo     Repository
}

func NewResolver(verifier portauth.TokenVerifier, repo Repository) *Resolver {
	return &Resolver{verifier: verifier, repo: repo}
}

// ResolveHeader espera "Bearer <token>". Cualquier falla (header ausente o
// malformado, token inválido, usuario inexistente) responde el mismo
// ErrUnauthenticated, sin detalle.
func (r *Resolver) ResolveHeader(ctx context.Context, authHeader string) (access.Principal, error) {
	token := bearerToken(authHeader)
	if token == "" {
		return access.Principal{}, access.ErrUnauthenticated
	}

	claims, err := r.verifier.Verify(ctx, token)
	if err != nil {
		return access.Principal{}, access.ErrUnauthenticated
	}

	// Fail closed: token válido pero usuario borrado => no autenticado.
	u, err := r.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return access.Principal{}, access.ErrUnauthenticated
	}

	return u.Principal(), nil
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
