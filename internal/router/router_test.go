package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dog-walking-app/internal/adapters/auth/jwtauth"
	"dog-walking-app/internal/adapters/hash/bcrypt"
	"dog-walking-app/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tokens, err := jwtauth.New(jwtauth.Config{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("jwtauth.New returned error: %v", err)
	}

	return httptest.NewServer(router.NewRouter(router.Options{
		Issuer:   tokens,
		Verifier: tokens,
		// Cost mínimo para que los tests no sean lentos.
		Hasher:        bcrypt.NewWithCost(4),
		AdminEmail:    "admin@test.com",
		AdminPassword: "admin-pw",
	}))
}

func TestHTTP_RoleEscalation_RequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	adminTok := login(t, ts.URL, "admin@test.com", "admin-pw")

	// 1) Admin crea walker U con password temporal
	st, body := doReq(t, ts.URL, "POST", "/users", adminTok, map[string]any{
		"name":  "Walker U",
		"email": "u@test.com",
		"role":  "walker",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
	}
	var created struct {
		ID           string `json:"id"`
		TempPassword string `json:"temp_password"`
	}
	_ = json.Unmarshal(body, &created)
	if created.ID == "" || created.TempPassword == "" {
		t.Fatalf("expected id and temp_password, got %s", string(body))
	}

	// 2) U se loguea con el password temporal
	uTok := login(t, ts.URL, "u@test.com", created.TempPassword)

	// 3) U intenta auto-promoverse a admin => 403
	st, _ = doReq(t, ts.URL, "PUT", "/users/"+created.ID, uTok, map[string]any{
		"role": "admin",
	})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 self role change, got %d", st)
	}

	// 4) U no puede listar usuarios
	st, _ = doReq(t, ts.URL, "GET", "/users", uTok, nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 list users as walker, got %d", st)
	}

	// 5) El mismo update hecho por el admin sí pasa
	st, body = doReq(t, ts.URL, "PUT", "/users/"+created.ID, adminTok, map[string]any{
		"role": "admin",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 admin role change, got %d body=%s", st, string(body))
	}

	// 6) El rol nuevo aplica con el token viejo (re-fetch por request)
	st, _ = doReq(t, ts.URL, "GET", "/users", uTok, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list users after promotion, got %d", st)
	}
}

func TestHTTP_DogSoftDelete_Scoped(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	ownerTok := register(t, ts.URL, "Owner O", "o@test.com", "owner-pw", "owner")
	walkerTok := register(t, ts.URL, "Walker W", "w@test.com", "walker-pw", "walker")

	// 1) Owner crea dog; owner_id y is_active del body se ignoran
	st, body := doReq(t, ts.URL, "POST", "/dogs", ownerTok, map[string]any{
		"name":              "Milo",
		"breed":             "mixed",
		"age":               3,
		"emergency_contact": "555-0000",
		"owner_id":          "forced-by-client",
		"is_active":         false,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}
	var dog struct {
		ID       string `json:"id"`
		OwnerID  string `json:"owner_id"`
		IsActive bool   `json:"is_active"`
	}
	_ = json.Unmarshal(body, &dog)
	if dog.OwnerID == "forced-by-client" || !dog.IsActive {
		t.Fatalf("expected forced owner_id and is_active=true, got %s", string(body))
	}

	// 2) Walker no puede borrar el dog ajeno: 404, nunca 403
	st, _ = doReq(t, ts.URL, "DELETE", "/dogs/"+dog.ID, walkerTok, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 delete by non-owner, got %d", st)
	}

	// 3) Tampoco puede editarlo
	st, _ = doReq(t, ts.URL, "PUT", "/dogs/"+dog.ID, walkerTok, map[string]any{
		"name": "Hacked",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 update by non-owner, got %d", st)
	}

	// 4) Owner sí puede
	st, _ = doReq(t, ts.URL, "DELETE", "/dogs/"+dog.ID, ownerTok, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete by owner, got %d", st)
	}

	// 5) El dog borrado desaparece del listado
	st, body = doReq(t, ts.URL, "GET", "/dogs", ownerTok, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list dogs, got %d", st)
	}
	var list []json.RawMessage
	_ = json.Unmarshal(body, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty listing after soft delete, got %s", string(body))
	}
}

func TestHTTP_DogList_AdminAllFlag(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	adminTok := login(t, ts.URL, "admin@test.com", "admin-pw")
	o1Tok := register(t, ts.URL, "Owner 1", "o1@test.com", "pw-1", "owner")
	o2Tok := register(t, ts.URL, "Owner 2", "o2@test.com", "pw-2", "owner")

	createDog(t, ts.URL, o1Tok, "Rex")
	createDog(t, ts.URL, o2Tok, "Luna")

	// Owner 1 ve solo el suyo, incluso pidiendo all=true
	st, body := doReq(t, ts.URL, "GET", "/dogs?all=true", o1Tok, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	if n := countItems(t, body); n != 1 {
		t.Fatalf("expected owner to see 1 dog with all=true, got %d", n)
	}

	// Admin sin all: owner-scoped (no tiene dogs propios)
	st, body = doReq(t, ts.URL, "GET", "/dogs", adminTok, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	if n := countItems(t, body); n != 0 {
		t.Fatalf("expected admin default listing to be empty, got %d", n)
	}

	// Admin con all=true ve todos los activos
	st, body = doReq(t, ts.URL, "GET", "/dogs?all=true", adminTok, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	if n := countItems(t, body); n != 2 {
		t.Fatalf("expected admin all listing to have 2 dogs, got %d", n)
	}
}

func TestHTTP_TokenOfDeletedUser_Unauthorized(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	adminTok := login(t, ts.URL, "admin@test.com", "admin-pw")
	oTok := register(t, ts.URL, "Owner O", "o@test.com", "owner-pw", "owner")

	st, body := doReq(t, ts.URL, "GET", "/auth/me", oTok, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 me, got %d", st)
	}
	var me struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &me)

	// Admin borra la cuenta; el token de O sigue firmado y vigente...
	st, _ = doReq(t, ts.URL, "DELETE", "/users/"+me.ID, adminTok, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete user, got %d", st)
	}

	// ...pero ya no autentica.
	st, _ = doReq(t, ts.URL, "GET", "/auth/me", oTok, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with deleted user token, got %d", st)
	}
}

func TestHTTP_Unauthenticated(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	for _, path := range []string{"/auth/me", "/dogs", "/users"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token on %s, got %d", path, st)
		}
		st, _ = doReq(t, ts.URL, "GET", path, "garbage-token", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with invalid token on %s, got %d", path, st)
		}
	}
}

func TestHTTP_Register_DuplicateEmail_CaseInsensitive(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	register(t, ts.URL, "Ana", "ana@test.com", "secret", "owner")

	st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
		"name":     "Ana 2",
		"email":    "ANA@Test.com",
		"password": "secret",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate email, got %d", st)
	}

	// Y registrarse como admin tampoco se puede.
	st, _ = doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
		"name":     "Eve",
		"email":    "eve@test.com",
		"password": "secret",
		"role":     "admin",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 admin self-registration, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

func register(t *testing.T, baseURL, name, email, password, role string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("expected token in register response, got %s", string(body))
	}
	return resp.Token
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("expected token in login response, got %s", string(body))
	}
	return resp.Token
}

func createDog(t *testing.T, baseURL, token, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", token, map[string]any{
		"name":              name,
		"breed":             "mixed",
		"age":               2,
		"emergency_contact": "555-0000",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	return resp.ID
}

func countItems(t *testing.T, body []byte) int {
	t.Helper()

	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("expected JSON array, got %s", string(body))
	}
	return len(list)
}

func doReq(t *testing.T, baseURL, method, path, token string, payload map[string]any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}
