package users

import (
	"context"
	"testing"

	"dog-walking-app/internal/domain/access"
)

func TestEnsureAdmin_CreatesOnEmptyStore(t *testing.T) {
	repo := newTestRepo()

	created, err := EnsureAdmin(context.Background(), repo, testHasher{}, "Admin@Test.com", "seed-pw")
	if err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	if !created {
		t.Fatalf("expected admin to be created")
	}

	u, err := repo.GetByEmail(context.Background(), "admin@test.com")
	if err != nil {
		t.Fatalf("expected seeded admin by normalized email, got %v", err)
	}
	if u.Role != access.RoleAdmin {
		t.Fatalf("expected admin role, got %s", u.Role)
	}
	if u.PasswordHash != "hashed:seed-pw" {
		t.Fatalf("expected hashed seed password")
	}
}

func TestEnsureAdmin_SkipsWhenUsersExist(t *testing.T) {
	repo := newTestRepo()
	seedUser(repo, "o1", access.RoleOwner, "o1@test.com")

	created, err := EnsureAdmin(context.Background(), repo, testHasher{}, "admin@test.com", "seed-pw")
	if err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	if created {
		t.Fatalf("expected seed to be skipped with existing users")
	}
}
