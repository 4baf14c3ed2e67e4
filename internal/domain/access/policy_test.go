package access

import "testing"

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleWalker, RoleAdmin} {
		if !ValidRole(r) {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if ValidRole(Role("superadmin")) {
		t.Fatalf("expected unknown role to be invalid")
	}
	if ValidRole(Role("")) {
		t.Fatalf("expected empty role to be invalid")
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(Principal{ID: "u1", Role: RoleAdmin}) {
		t.Fatalf("expected admin principal to be admin")
	}
	if IsAdmin(Principal{ID: "u1", Role: RoleOwner}) {
		t.Fatalf("expected owner principal not to be admin")
	}
	if IsAdmin(Principal{ID: "u1", Role: RoleWalker}) {
		t.Fatalf("expected walker principal not to be admin")
	}
}

func TestIsSelf(t *testing.T) {
	p := Principal{ID: "u1", Role: RoleOwner}

	if !IsSelf(p, "u1") {
		t.Fatalf("expected self match")
	}
	if IsSelf(p, "u2") {
		t.Fatalf("expected no self match for other id")
	}
	// Un principal sin ID no matchea nada (ni siquiera target vacío).
	if IsSelf(Principal{}, "") {
		t.Fatalf("expected empty principal not to self-match empty target")
	}
}

func TestCanAccessAdminOrSelf(t *testing.T) {
	admin := Principal{ID: "a1", Role: RoleAdmin}
	owner := Principal{ID: "o1", Role: RoleOwner}

	if !CanAccessAdminOrSelf(admin, "cualquiera") {
		t.Fatalf("expected admin to access any target")
	}
	if !CanAccessAdminOrSelf(owner, "o1") {
		t.Fatalf("expected owner to access own record")
	}
	if CanAccessAdminOrSelf(owner, "o2") {
		t.Fatalf("expected owner not to access other record")
	}
}

func TestCanMutateRole_OnlyAdmin(t *testing.T) {
	if !CanMutateRole(Principal{ID: "a1", Role: RoleAdmin}) {
		t.Fatalf("expected admin to mutate roles")
	}
	// Self-access no alcanza para mutar el propio role.
	if CanMutateRole(Principal{ID: "o1", Role: RoleOwner}) {
		t.Fatalf("expected owner not to mutate roles")
	}
	if CanMutateRole(Principal{ID: "w1", Role: RoleWalker}) {
		t.Fatalf("expected walker not to mutate roles")
	}
}

func TestCanDeleteUser_NeverSelf(t *testing.T) {
	admin := Principal{ID: "a1", Role: RoleAdmin}

	if !CanDeleteUser(admin, "u2") {
		t.Fatalf("expected admin to delete other user")
	}
	if CanDeleteUser(admin, "a1") {
		t.Fatalf("expected admin not to delete itself")
	}
	if CanDeleteUser(Principal{ID: "o1", Role: RoleOwner}, "u2") {
		t.Fatalf("expected non-admin not to delete users")
	}
}

func TestCanListAll(t *testing.T) {
	admin := Principal{ID: "a1", Role: RoleAdmin}
	walker := Principal{ID: "w1", Role: RoleWalker}

	if !CanListAllUsers(admin) || !CanListAllDogs(admin) {
		t.Fatalf("expected admin to list all")
	}
	if CanListAllUsers(walker) || CanListAllDogs(walker) {
		t.Fatalf("expected walker not to list all")
	}
}
