package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	portauth "dog-walking-app/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL es la vida fija del token de sesión (política del producto).
const DefaultTTL = 7 * 24 * time.Hour

// Config es configuración explícita, inyectada en construcción.
// No hay estado global ni secret por defecto: un secret vacío es error.
type Config struct {
	Secret string
	TTL    time.Duration // <= 0 => DefaultTTL
}

// Service implementa ports/auth.TokenIssuer y TokenVerifier con JWT HS256.
// No hay revocation list: el token vale su vida completa; la mitigación
// es el re-fetch del usuario por request (ver users.Resolver).
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwtauth: signing secret required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue firma un token con subject = userID y expiración absoluta now+TTL.
func (s *Service) Issue(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("jwtauth: user id required")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y expiración. Cualquier falla devuelve el mismo
// ErrInvalidToken opaco.
func (s *Service) Verify(ctx context.Context, raw string) (portauth.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return portauth.Claims{}, portauth.ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return portauth.Claims{}, portauth.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return portauth.Claims{}, portauth.ErrInvalidToken
	}

	return portauth.Claims{UserID: claims.Subject}, nil
}
