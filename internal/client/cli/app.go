// Package cli implements the interactive terminal client: a REPL over the
// auth and catalog services, with a session guard in front of every
// authenticated view.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"sync/atomic"

	"cantina-pos/internal/client/api"
	"cantina-pos/internal/client/config"
	"cantina-pos/internal/client/models"
	"cantina-pos/internal/client/services"
	"cantina-pos/internal/client/session"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	catalogService services.CatalogService
	currentUser    *models.User
	sessionExpired atomic.Bool
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}
	store := session.NewStore(db)

	app := &App{config: c, reader: bufio.NewReader(os.Stdin)}

	tokens := func(ctx context.Context) string {
		st, err := store.Load(ctx)
		if err != nil {
			return ""
		}
		return st.Token
	}

	// any 401 anywhere drops the local session, exactly once per expiry
	onUnauthorized := func() {
		if app.sessionExpired.CompareAndSwap(false, true) {
			_ = store.Clear(context.Background())
		}
	}

	apiClient := api.NewClient(c.ServerURL, tokens, onUnauthorized)

	app.authService = services.NewAuthService(apiClient, store)
	app.catalogService = services.NewCatalogService(apiClient)

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

// restoreSession routes the user optimistically from the stored state. The
// first guarded view still re-verifies against the server.
func (a *App) restoreSession(ctx context.Context) {
	st, err := a.authService.State(ctx)
	if err != nil || !st.IsAuthenticated {
		return
	}
	a.currentUser = st.User
	log.Printf("Welcome back, %s", st.User.Name)
}

// guard is the client-side route guard: every authenticated view calls it
// first. It re-verifies the session against the server, so a token that was
// revoked or expired since login sends the user back to the login view.
func (a *App) guard(ctx context.Context) bool {
	user, err := a.authService.Verify(ctx)
	if err != nil {
		a.currentUser = nil
		_ = a.authService.Logout(ctx)
		log.Printf("Session expired, please log in again")
		return false
	}
	a.sessionExpired.Store(false)
	a.currentUser = user
	return true
}

func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	a.Root(ctx)
}
