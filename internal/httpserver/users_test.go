package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"shopapi/internal/domain"
)

func TestCreateUser(t *testing.T) {
	router, st := newTestEnv(t)

	w := do(t, router, http.MethodPost, "/users", testToken, map[string]any{
		"email":    "bob@example.com",
		"name":     "Bob",
		"password": "password456",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decode(t, w, &created)
	if created.Email != "bob@example.com" {
		t.Errorf("unexpected user: %+v", created)
	}
	if strings.Contains(w.Body.String(), "passwordHash") {
		t.Errorf("password hash leaked: %s", w.Body.String())
	}
	// The new user gets an empty cart.
	if c := st.CartByUser(created.ID); c.ID != "cart-"+created.ID {
		t.Errorf("cart not initialized: %+v", c)
	}

	// Duplicate email conflicts.
	w = do(t, router, http.MethodPost, "/users", testToken, map[string]any{
		"email":    "bob@example.com",
		"name":     "Bob Again",
		"password": "password456",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if code := errCode(t, w); code != codeConflict {
		t.Errorf("expected CONFLICT, got %s", code)
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, _ := newTestEnv(t)

	// Password shorter than 8 characters.
	w := do(t, router, http.MethodPost, "/users", testToken, map[string]any{
		"email":    "short@example.com",
		"name":     "Shorty",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = do(t, router, http.MethodPost, "/users", testToken, map[string]any{
		"email":    "not-an-email",
		"name":     "X",
		"password": "password123",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
}

func TestGetUser(t *testing.T) {
	router, _ := newTestEnv(t)

	w := do(t, router, http.MethodGet, "/users/u1", testToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/users/ghost", testToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateUser(t *testing.T) {
	router, st := newTestEnv(t)

	w := do(t, router, http.MethodPut, "/users/u1", testToken, map[string]any{"name": "Alicia"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	u, _ := st.User("u1")
	if u.Name != "Alicia" {
		t.Errorf("name not updated: %+v", u)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email changed unexpectedly: %s", u.Email)
	}
}

func TestDeleteUser(t *testing.T) {
	router, st := newTestEnv(t)
	// Delete someone other than the token's owner so the session stays valid.
	st.CreateUser(domain.User{ID: "u2", Email: "bob@example.com", Name: "Bob"})

	if w := do(t, router, http.MethodDelete, "/users/u2", testToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := do(t, router, http.MethodDelete, "/users/u2", testToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
