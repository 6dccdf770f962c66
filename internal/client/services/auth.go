// Package services contains application services for the POS client. This
// file defines the auth service: register, login, server-side session
// verification, and logout housekeeping of the local session store.
package services

import (
	"context"
	"fmt"

	"cantina-pos/internal/client/api"
	"cantina-pos/internal/client/models"
	"cantina-pos/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; the returned token is stored like a login.
//   - Login: authenticate and persist token+user+flag atomically.
//   - Verify: ask the server whether the stored token still resolves to a
//     live user; refresh the stored user on success.
//   - Logout: wipe the local session.
//   - State: current local session state without touching the network.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Verify(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	State(ctx context.Context) (*session.State, error)
}

type authService struct {
	client *api.Client
	store  *session.Store
}

func NewAuthService(client *api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user, token, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, token, user); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.store.Save(ctx, token, user); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Verify(ctx context.Context) (*models.User, error) {
	user, err := a.client.Verify(ctx)
	if err != nil {
		return nil, err
	}

	// keep the cached user current; the token itself is unchanged
	st, err := a.store.Load(ctx)
	if err == nil && st.Token != "" {
		_ = a.store.Save(ctx, st.Token, user)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) State(ctx context.Context) (*session.State, error) {
	return a.store.Load(ctx)
}
