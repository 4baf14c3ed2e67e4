package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken es el único error que sale de un verifier.
// Token malformado, firma inválida o expirado responden igual:
// no damos pistas de cuál check falló.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer emite un token firmado y con expiración absoluta para un usuario.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// TokenVerifier verifica un token y devuelve claims o ErrInvalidToken.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
