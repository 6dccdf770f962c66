package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cantina-pos/internal/client/api"
	"cantina-pos/internal/client/session"
)

var dbSeq int

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:auth_service_tests_%d?mode=memory&cache=shared", dbSeq)
	db, err := session.InitDatabase(context.Background(), dsn)
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return session.NewStore(db)
}

func newAuthWithServer(t *testing.T, handler http.HandlerFunc) (AuthService, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := newTestStore(t)
	tokens := func(ctx context.Context) string {
		st, err := store.Load(ctx)
		if err != nil {
			return ""
		}
		return st.Token
	}
	client := api.NewClient(srv.URL, tokens, nil)
	return NewAuthService(client, store), store
}

func TestLogin_PersistsSession(t *testing.T) {
	svc, store := newAuthWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice","email":"a@b.com","token":"tok-123"}`))
	})

	user, err := svc.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	st, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !st.IsAuthenticated || st.Token != "tok-123" || st.User.Email != "a@b.com" {
		t.Fatalf("session not persisted: %+v", st)
	}
}

func TestLogin_FailureLeavesSessionEmpty(t *testing.T) {
	svc, store := newAuthWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid email or password"}`))
	})

	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}

	st, _ := svc.State(context.Background())
	if st.IsAuthenticated {
		t.Fatalf("session should stay empty: %+v", st)
	}
	_ = store
}

func TestRegister_PersistsSessionLikeLogin(t *testing.T) {
	svc, _ := newAuthWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u-9","name":"Bob","email":"b@b.com","token":"tok-9"}`))
	})

	if _, err := svc.Register(context.Background(), "Bob", "b@b.com", "pw"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	st, _ := svc.State(context.Background())
	if !st.IsAuthenticated || st.Token != "tok-9" {
		t.Fatalf("session not persisted: %+v", st)
	}
}

func TestVerify_RefreshesStoredUser(t *testing.T) {
	svc, store := newAuthWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice","email":"a@b.com","token":"tok-123"}`))
		case "/api/auth/verify":
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"not authorized, token failed"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice Renamed","email":"a@b.com"}`))
		}
	})

	if _, err := svc.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	user, err := svc.Verify(context.Background())
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if user.Name != "Alice Renamed" {
		t.Fatalf("unexpected user: %+v", user)
	}

	st, _ := store.Load(context.Background())
	if st.User.Name != "Alice Renamed" {
		t.Fatalf("stored user not refreshed: %+v", st.User)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, _ := newAuthWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Alice","email":"a@b.com","token":"tok-123"}`))
	})

	if _, err := svc.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout error: %v", err)
	}

	st, _ := svc.State(context.Background())
	if st.IsAuthenticated || st.Token != "" {
		t.Fatalf("session not cleared: %+v", st)
	}
}
