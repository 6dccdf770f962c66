// Package api is the REST client for the POS backend. A RoundTripper
// attaches the stored bearer token to every request, and a response hook
// fires on any 401 so the app can drop its local session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cantina-pos/internal/client/models"
)

// TokenSource returns the current bearer token, or "" when logged out.
type TokenSource func(ctx context.Context) string

type bearerTransport struct {
	base           http.RoundTripper
	tokens         TokenSource
	onUnauthorized func()
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok := t.tokens(req.Context()); tok != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}
	return resp, nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL. tokens supplies the
// bearer token per request; onUnauthorized runs whenever any response comes
// back 401.
func NewClient(baseURL string, tokens TokenSource, onUnauthorized func()) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &bearerTransport{
				base:           http.DefaultTransport,
				tokens:         tokens,
				onUnauthorized: onUnauthorized,
			},
		},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// do issues one JSON request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		msg := e.Error
		if msg == "" {
			msg = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrRateLimited, msg)
		default:
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type authResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (r *authResponse) user() *models.User {
	return &models.User{ID: r.ID, Name: r.Name, Email: r.Email}
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.user(), resp.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.user(), resp.Token, nil
}

// Verify asks the server whether the stored token still resolves to a live
// user. It is the route guard's source of truth.
func (c *Client) Verify(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, name string, priceCents int64, stock int) (*models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodPost, "/api/products",
		map[string]any{"name": name, "price_cents": priceCents, "stock": stock}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

// ImageUploadURL fetches a presigned PUT URL for the product's image.
func (c *Client) ImageUploadURL(ctx context.Context, productID string) (string, string, error) {
	var resp struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/products/"+productID+"/image-upload", nil, &resp); err != nil {
		return "", "", err
	}
	return resp.Key, resp.URL, nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var resp struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/customers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	var cust models.Customer
	err := c.do(ctx, http.MethodPost, "/api/customers",
		map[string]string{"name": name, "email": email, "phone": phone}, &cust)
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

// SaleItemInput is one requested sale line; the server prices it.
type SaleItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (c *Client) CreateSale(ctx context.Context, customerID *string, items []SaleItemInput) (*models.Sale, error) {
	var sale models.Sale
	err := c.do(ctx, http.MethodPost, "/api/sales",
		map[string]any{"customer_id": customerID, "items": items}, &sale)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (c *Client) ListSales(ctx context.Context, limit int) ([]models.Sale, error) {
	path := "/api/sales"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var resp struct {
		Sales []models.Sale `json:"sales"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sales, nil
}
