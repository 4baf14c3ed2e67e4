package middleware

import (
	"context"
	"net/http"

	"dog-walking-app/internal/domain/access"
)

type ctxKey string

const principalKey ctxKey = "principal"

// PrincipalResolver resuelve el header Authorization a un principal vivo.
// Lo implementa users.Resolver (verify + re-fetch por request).
type PrincipalResolver interface {
	ResolveHeader(ctx context.Context, authHeader string) (access.Principal, error)
}

// AuthContext intenta resolver el principal y lo cuelga del context.
// No corta el request: si no hay principal, el handler decide el 401.
func AuthContext(resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.ResolveHeader(r.Context(), header)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal recupera el principal resuelto, si lo hay.
func GetPrincipal(ctx context.Context) (access.Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}
