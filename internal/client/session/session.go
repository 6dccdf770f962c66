// Package session persists the client's login state in a local sqlite
// key/value table, the terminal equivalent of browser local storage. The
// state is exactly three keys: token, user, is_authenticated.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"cantina-pos/internal/client/migrations"
	"cantina-pos/internal/client/models"
	"cantina-pos/internal/dbx"
)

const (
	keyToken           = "token"
	keyUser            = "user"
	keyIsAuthenticated = "is_authenticated"
)

// RunMigrations applies the embedded sqlite migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local session database and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLiteRepository is the raw key/value access under Store.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// State is the materialized login state.
type State struct {
	Token           string
	User            *models.User
	IsAuthenticated bool
}

// Store reads and writes the login state. Save and Clear touch all three
// keys inside one transaction so the state is never partially updated.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save persists token, user, and the authenticated flag atomically.
func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUser, userJSON); err != nil {
			return err
		}
		return repo.Set(ctx, keyIsAuthenticated, []byte("true"))
	})
}

// Clear wipes the whole state atomically.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Clear(ctx)
	})
}

// Load returns the stored state. A missing or unreadable user record makes
// the state unauthenticated rather than failing: the next verify will settle
// it.
func (s *Store) Load(ctx context.Context) (*State, error) {
	repo := NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	flag, err := repo.Get(ctx, keyIsAuthenticated)
	if err != nil {
		return nil, err
	}
	userJSON, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	st := &State{Token: string(token)}
	if len(userJSON) > 0 {
		var u models.User
		if err := json.Unmarshal(userJSON, &u); err == nil {
			st.User = &u
		}
	}
	st.IsAuthenticated = string(flag) == "true" && st.Token != "" && st.User != nil
	return st, nil
}
