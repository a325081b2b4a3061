package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"micromarket/internal/api"
	"micromarket/internal/domain"
)

func newClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, srv.Client(), zerolog.Nop())
}

func TestLogin_SendsCredentialsAndReturnsToken(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Email != "a@x.com" || body.Password != "secret" {
			t.Errorf("body = %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "T1",
			"token_type":   "bearer",
		})
	}))

	token, err := c.Login(context.Background(), "a@x.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "T1" {
		t.Fatalf("token = %q, want T1", token)
	}
}

func TestMe_SendsBearerToken(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/me" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer T1" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(domain.User{ID: "1", Name: "A", Role: domain.RoleVendor})
	}))

	user, err := c.Me(context.Background(), "T1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.ID != "1" || user.Role != domain.RoleVendor {
		t.Fatalf("user = %+v", user)
	}
}

func TestStatusError_CarriesDetail(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if se.StatusCode != http.StatusUnauthorized || se.Detail != "Invalid credentials" {
		t.Fatalf("status error = %+v", se)
	}
	if detail, ok := api.Detail(err); !ok || detail != "Invalid credentials" {
		t.Fatalf("Detail() = %q, %v", detail, ok)
	}
}

func TestStatusError_WithoutDetailBody(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusBadGateway)
	}))

	_, err := c.Login(context.Background(), "a@x.com", "secret")
	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if se.Detail != "" {
		t.Fatalf("detail = %q, want empty for non-JSON body", se.Detail)
	}
	if _, ok := api.Detail(err); ok {
		t.Fatal("Detail() should report absence")
	}
}

func TestSupplierProducts_EscapesPath(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/suppliers/sup 1/products" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]domain.Product{{ID: "p1", SupplierID: "sup 1"}})
	}))

	products, err := c.SupplierProducts(context.Background(), "sup 1")
	if err != nil {
		t.Fatalf("supplier products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("products = %+v", products)
	}
}

func TestAddCartItem_PayloadShape(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cart/add" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["product_id"] != "p1" || body["supplier_id"] != "s1" {
			t.Errorf("ids = %v / %v", body["product_id"], body["supplier_id"])
		}
		if body["quantity"] != float64(2) || body["price_per_unit"] != 2.5 {
			t.Errorf("qty/price = %v / %v", body["quantity"], body["price_per_unit"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Item added to cart"})
	}))

	err := c.AddCartItem(context.Background(), "T1", domain.LineItem{
		ProductID:  "p1",
		SupplierID: "s1",
		UnitPrice:  2.5,
		Quantity:   2,
	})
	if err != nil {
		t.Fatalf("add cart item: %v", err)
	}
}

func TestSeedDemo_ReturnsMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/demo/init" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Demo data initialized successfully"})
	}))

	msg, err := c.SeedDemo(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if msg != "Demo data initialized successfully" {
		t.Fatalf("message = %q", msg)
	}
}
