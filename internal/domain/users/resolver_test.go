package users

import (
	"context"
	"errors"
	"testing"

	"dog-walking-app/internal/domain/access"
	portauth "dog-walking-app/internal/ports/auth"
)

type testVerifier struct {
	byToken map[string]string // token => user id
}

func (v *testVerifier) Verify(ctx context.Context, token string) (portauth.Claims, error) {
	id, ok := v.byToken[token]
	if !ok {
		return portauth.Claims{}, portauth.ErrInvalidToken
	}
	return portauth.Claims{UserID: id}, nil
}

func TestResolver_ResolveHeader(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "o1", access.RoleOwner, "o1@test.com")

	verifier := &testVerifier{byToken: map[string]string{"tok-o1": "o1"}}
	res := NewResolver(verifier, repo)

	p, err := res.ResolveHeader(context.Background(), "Bearer tok-o1")
	if err != nil {
		t.Fatalf("ResolveHeader returned error: %v", err)
	}
	if p.ID != "o1" || p.Role != access.RoleOwner {
		t.Fatalf("unexpected principal: %#v", p)
	}
}

func TestResolver_RoleIsLive(t *testing.T) {
	// El rol sale del registro vivo, no del token: un cambio aplica
	// en el siguiente request.
	repo := newTestRepo()
	u := seedUser(repo, "w1", access.RoleWalker, "w1@test.com")

	verifier := &testVerifier{byToken: map[string]string{"tok-w1": "w1"}}
	res := NewResolver(verifier, repo)

	u.Role = access.RoleAdmin
	repo.byID["w1"] = u

	p, err := res.ResolveHeader(context.Background(), "Bearer tok-w1")
	if err != nil {
		t.Fatalf("ResolveHeader returned error: %v", err)
	}
	if p.Role != access.RoleAdmin {
		t.Fatalf("expected live role admin, got %s", p.Role)
	}
}

func TestResolver_DeletedUser_Unauthenticated(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "o1", access.RoleOwner, "o1@test.com")

	verifier := &testVerifier{byToken: map[string]string{"tok-o1": "o1"}}
	res := NewResolver(verifier, repo)

	// Token válido pero el usuario ya no existe => fail closed.
	delete(repo.byID, "o1")

	if _, err := res.ResolveHeader(context.Background(), "Bearer tok-o1"); !errors.Is(err, access.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for deleted user, got %v", err)
	}
}

func TestResolver_MalformedHeader(t *testing.T) {
	repo := newTestRepo()
	verifier := &testVerifier{byToken: map[string]string{}}
	res := NewResolver(verifier, repo)

	for _, header := range []string{
		"",
		"   ",
		"tok-sin-scheme",
		"Basic dXNlcjpwdw==",
		"Bearer",
		"Bearer   ",
	} {
		if _, err := res.ResolveHeader(context.Background(), header); !errors.Is(err, access.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated for header %q, got %v", header, err)
		}
	}
}

func TestResolver_InvalidToken(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "o1", access.RoleOwner, "o1@test.com")

	verifier := &testVerifier{byToken: map[string]string{"tok-o1": "o1"}}
	res := NewResolver(verifier, repo)

	if _, err := res.ResolveHeader(context.Background(), "Bearer otro-token"); !errors.Is(err, access.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for unknown token, got %v", err)
	}
}
