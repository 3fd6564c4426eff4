package httpserver

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type orderResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Status string `json:"status"`
	Items  []struct {
		ProductID   string `json:"productId"`
		ProductName string `json:"productName"`
		Price       string `json:"price"`
		Quantity    int    `json:"quantity"`
	} `json:"items"`
	TotalAmount     string `json:"totalAmount"`
	ShippingAddress *struct {
		City string `json:"city"`
	} `json:"shippingAddress"`
}

func TestPlaceOrderFlow(t *testing.T) {
	router, st := newTestEnv(t)

	do(t, router, http.MethodPost, "/carts/users/u1/items", testToken, map[string]any{
		"productId": "p1",
		"quantity":  2,
	})

	w := do(t, router, http.MethodPost, "/orders", testToken, map[string]any{"userId": "u1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var o orderResponse
	decode(t, w, &o)
	if o.Status != "pending" {
		t.Errorf("expected status pending, got %s", o.Status)
	}
	if o.TotalAmount != "4999.98" {
		t.Errorf("expected total 4999.98, got %s", o.TotalAmount)
	}
	if len(o.Items) != 1 || o.Items[0].ProductName != "MacBook Pro 16\"" || o.Items[0].Price != "2499.99" {
		t.Errorf("unexpected item snapshot: %+v", o.Items)
	}
	// Falls back to the user's stored address.
	if o.ShippingAddress == nil || o.ShippingAddress.City != "Springfield" {
		t.Errorf("unexpected shipping address: %+v", o.ShippingAddress)
	}

	p, _ := st.Product("p1")
	if p.Stock != 8 {
		t.Errorf("expected stock 8, got %d", p.Stock)
	}
	if c := st.CartByUser("u1"); len(c.Items) != 0 {
		t.Errorf("cart not cleared: %+v", c.Items)
	}

	// The cart is now empty, so a second placement fails.
	w = do(t, router, http.MethodPost, "/orders", testToken, map[string]any{"userId": "u1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errCode(t, w); code != codeEmptyCart {
		t.Errorf("expected EMPTY_CART, got %s", code)
	}
}

func TestPlaceOrderExplicitAddress(t *testing.T) {
	router, _ := newTestEnv(t)

	do(t, router, http.MethodPost, "/carts/users/u1/items", testToken, map[string]any{
		"productId": "p2",
		"quantity":  1,
	})

	w := do(t, router, http.MethodPost, "/orders", testToken, map[string]any{
		"userId": "u1",
		"shippingAddress": map[string]string{
			"street":     "9 Elm St",
			"city":       "Shelbyville",
			"postalCode": "67890",
			"country":    "USA",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var o orderResponse
	decode(t, w, &o)
	if o.ShippingAddress == nil || o.ShippingAddress.City != "Shelbyville" {
		t.Errorf("explicit address not used: %+v", o.ShippingAddress)
	}
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	router, st := newTestEnv(t)

	// p2 has stock 3; stage 3 in the cart, then shrink stock to 2 so the
	// placement itself fails.
	do(t, router, http.MethodPost, "/carts/users/u1/items", testToken, map[string]any{
		"productId": "p2",
		"quantity":  3,
	})
	p, _ := st.Product("p2")
	p.Stock = 2
	if err := st.SaveProduct(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	w := do(t, router, http.MethodPost, "/orders", testToken, map[string]any{"userId": "u1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if code := errCode(t, w); code != codeInsufficientStock {
		t.Errorf("expected INSUFFICIENT_STOCK, got %s", code)
	}
	if c := st.CartByUser("u1"); len(c.Items) != 1 {
		t.Errorf("cart changed on failed placement: %+v", c.Items)
	}
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	router, _ := newTestEnv(t)

	w := do(t, router, http.MethodPost, "/orders", testToken, map[string]any{"userId": "ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func placeOrder(t *testing.T, router *gin.Engine) string {
	t.Helper()
	do(t, router, http.MethodPost, "/carts/users/u1/items", testToken, map[string]any{
		"productId": "p2",
		"quantity":  1,
	})
	w := do(t, router, http.MethodPost, "/orders", testToken, map[string]any{"userId": "u1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: %d: %s", w.Code, w.Body.String())
	}
	var o orderResponse
	decode(t, w, &o)
	return o.ID
}

func TestUpdateOrderStatus(t *testing.T) {
	router, _ := newTestEnv(t)
	id := placeOrder(t, router)

	w := do(t, router, http.MethodPatch, "/orders/"+id+"/status", testToken, map[string]string{"status": "processing"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var o orderResponse
	decode(t, w, &o)
	if o.Status != "processing" {
		t.Errorf("expected processing, got %s", o.Status)
	}

	// processing -> delivered skips shipped.
	w = do(t, router, http.MethodPatch, "/orders/"+id+"/status", testToken, map[string]string{"status": "delivered"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errCode(t, w); code != codeInvalidTransition {
		t.Errorf("expected INVALID_STATUS_TRANSITION, got %s", code)
	}

	// Unknown status values are rejected by the request schema.
	w = do(t, router, http.MethodPatch, "/orders/"+id+"/status", testToken, map[string]string{"status": "exploded"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errCode(t, w); code != codeBadRequest {
		t.Errorf("expected BAD_REQUEST, got %s", code)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	router, _ := newTestEnv(t)

	w := do(t, router, http.MethodPatch, "/orders/ghost/status", testToken, map[string]string{"status": "processing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListOrdersEnvelope(t *testing.T) {
	router, _ := newTestEnv(t)
	placeOrder(t, router)

	w := do(t, router, http.MethodGet, "/orders?userId=u1", testToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Orders []orderResponse `json:"orders"`
		Total  int             `json:"total"`
		Limit  int             `json:"limit"`
		Offset int             `json:"offset"`
	}
	decode(t, w, &resp)
	if resp.Total != 1 || len(resp.Orders) != 1 || resp.Limit != 10 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}

	w = do(t, router, http.MethodGet, "/orders?status=bogus", testToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status filter, got %d", w.Code)
	}
}
