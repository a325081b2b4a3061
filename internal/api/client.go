package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"micromarket/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// StatusError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when the failure payload included one.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend %s %s: %s (%s)", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("backend %s %s: %s", e.Method, e.Path, e.Status)
}

// ErrorDetail returns the backend's message, satisfying the optional
// interface the domain error helpers look for.
func (e *StatusError) ErrorDetail() string { return e.Detail }

// Detail extracts the backend's message from err, if err is a StatusError
// carrying one.
func Detail(err error) (string, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}

// Client talks JSON over HTTP to the MicroMarket backend.
type Client struct {
	Base string
	HTTP *http.Client

	log zerolog.Logger
}

// New returns a Client rooted at base. A nil httpClient falls back to
// http.DefaultClient.
func New(base string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient, log: log}
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.post(ctx, "/api/auth/login", "", in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Register creates an account. It does not authenticate; callers log in
// afterwards with the same credentials.
func (c *Client) Register(
	ctx context.Context,
	name, email, password string,
	role domain.Role,
) error {
	in := struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     domain.Role `json:"user_type"`
	}{Name: name, Email: email, Password: password, Role: role}
	return c.post(ctx, "/api/auth/register", "", in, nil)
}

// Me fetches the profile belonging to the bearer token.
func (c *Client) Me(ctx context.Context, token string) (domain.User, error) {
	var out domain.User
	if err := c.getJSON(ctx, "/api/users/me", token, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// Suppliers lists the public supplier directory.
func (c *Client) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	if err := c.getJSON(ctx, "/api/suppliers", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SupplierProducts lists one supplier's product catalog.
func (c *Client) SupplierProducts(
	ctx context.Context,
	supplier domain.SupplierID,
) ([]domain.Product, error) {
	var out []domain.Product
	path := "/api/suppliers/" + url.PathEscape(supplier.String()) + "/products"
	if err := c.getJSON(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cart fetches the server-side cart for the authenticated vendor.
func (c *Client) Cart(ctx context.Context, token string) (domain.RemoteCart, error) {
	var out domain.RemoteCart
	if err := c.getJSON(ctx, "/api/cart", token, &out); err != nil {
		return domain.RemoteCart{}, err
	}
	return out, nil
}

// AddCartItem mirrors one cart line to the backend.
func (c *Client) AddCartItem(ctx context.Context, token string, item domain.LineItem) error {
	return c.post(ctx, "/api/cart/add", token, item, nil)
}

// SeedDemo asks the backend to create demo suppliers and products.
func (c *Client) SeedDemo(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/demo/init", "", struct{}{}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) post(ctx context.Context, path, token string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("backend call")

	if resp.StatusCode/100 != 2 {
		return &StatusError{
			Method:     req.Method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     readDetail(resp.Body),
		}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// readDetail best-effort parses {"detail": "..."} from a failure body.
func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}

// Compile-time assertion that Client implements domain.BackendClient.
var _ domain.BackendClient = (*Client)(nil)
