// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and session verification
// against stateless bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cantina-pos/internal/common"
	"cantina-pos/internal/server/auth"
	"cantina-pos/internal/server/config"
	"cantina-pos/internal/server/models"
	"cantina-pos/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - Register: create users (no session is established)
//   - Login: verify credentials and mint a token
//   - VerifySession: resolve a presented token back to a live user
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenCodec
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.TokenValidity),
	}
}

// Register creates a user with a bcrypt-hashed password and returns the
// summary projection. The email pre-check produces a friendly duplicate
// error; the store's unique index closes the race a pre-check cannot.
// No token is issued here: callers log in separately.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.UserSummary, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user.Summary(), nil
}

// Login verifies credentials and issues a signed bearer token. A missing
// account and a wrong password collapse into the same error so responses do
// not leak which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.UserSummary, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user.Summary(), token, nil
}

// VerifySession decodes the token and re-fetches the user from the store, so
// the returned summary is always current. Codec errors propagate unchanged;
// a deleted account yields common.ErrorNotFound.
func (s *UserService) VerifySession(ctx context.Context, token string) (*models.UserSummary, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user.Summary(), nil
}
