package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/domain"
	authsvc "shopapi/internal/service/auth"
	cartsvc "shopapi/internal/service/cart"
	categorysvc "shopapi/internal/service/category"
	ordersvc "shopapi/internal/service/order"
	productsvc "shopapi/internal/service/product"
	usersvc "shopapi/internal/service/user"
	"shopapi/internal/store"
)

const testToken = "test-token"

// newTestEnv builds a router over a freshly seeded in-memory store. The fixed
// bearer token belongs to user u1.
func newTestEnv(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	st.CreateUser(domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: string(hash),
		Address: &domain.Address{
			Street: "123 Main St", City: "Springfield", PostalCode: "12345", Country: "USA",
		},
	})

	now := time.Now().UTC()
	st.CreateProduct(domain.Product{
		ID:        "p1",
		Name:      "MacBook Pro 16\"",
		Price:     decimal.RequireFromString("2499.99"),
		Stock:     10,
		CreatedAt: now,
		UpdatedAt: now,
	})
	st.CreateProduct(domain.Product{
		ID:        "p2",
		Name:      "T-Shirt",
		Price:     decimal.RequireFromString("29.99"),
		Stock:     3,
		CreatedAt: now.Add(time.Millisecond),
		UpdatedAt: now,
	})

	st.CreateCategory(domain.Category{ID: "c1", Name: "Electronics"})
	parent := "c1"
	st.CreateCategory(domain.Category{ID: "c2", Name: "Laptops", ParentID: &parent})

	if err := st.CreateToken(store.Token{
		Value:     testToken,
		UserID:    "u1",
		ExpiresAt: time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("token: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := buildRouter(logger, Deps{
		ProductSvc:  productsvc.New(st),
		CategorySvc: categorysvc.New(st),
		UserSvc:     usersvc.New(st),
		CartSvc:     cartsvc.New(st),
		OrderSvc:    ordersvc.New(st),
		AuthSvc:     authsvc.New(st, time.Hour),
	})
	return router, st
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// errCode extracts the error code from an error response body.
func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	decode(t, w, &resp)
	if resp.Error.Message == "" {
		t.Errorf("error response missing message: %s", w.Body.String())
	}
	return resp.Error.Code
}
