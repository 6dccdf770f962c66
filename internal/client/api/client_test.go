package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func staticToken(tok string) TokenSource {
	return func(ctx context.Context) string { return tok }
}

func TestBearerTransport_AttachesToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok-123"), nil)
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestBearerTransport_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), nil)
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization should be empty, got %q", gotAuth)
	}
}

func TestUnauthorizedHook_FiresOnAny401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"not authorized, token failed"}`))
	}))
	defer srv.Close()

	var fired atomic.Int32
	c := NewClient(srv.URL, staticToken("stale"), func() { fired.Add(1) })

	_, err := c.Verify(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if fired.Load() != 1 {
		t.Fatalf("hook fired %d times", fired.Load())
	}

	_, err = c.ListProducts(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if fired.Load() != 2 {
		t.Fatalf("hook fired %d times", fired.Load())
	}
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice","email":"a@b.com","token":"tok-123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), nil)
	user, token, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != "u-1" || token != "tok-123" {
		t.Fatalf("unexpected result: user=%+v token=%q", user, token)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"too many login attempts, try again later"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), nil)
	_, _, err := c.Login(context.Background(), "a@b.com", "pw")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
}

func TestServerDown_ErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, staticToken(""), nil)
	if err := c.Health(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestCreateSale_SendsItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s-1","total_cents":1150,"items":[{"product_id":"p-1","quantity":2,"unit_price_cents":425}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok"), nil)
	sale, err := c.CreateSale(context.Background(), nil, []SaleItemInput{{ProductID: "p-1", Quantity: 2}})
	if err != nil {
		t.Fatalf("CreateSale error: %v", err)
	}
	if sale.ID != "s-1" || sale.TotalCents != 1150 {
		t.Fatalf("unexpected sale: %+v", sale)
	}
}
