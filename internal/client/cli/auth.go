package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"cantina-pos/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, and password and creates an account.
// Like the web client, a successful registration leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.sessionExpired.Store(false)
	a.currentUser = user
	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnavailable):
			log.Printf("Server unavailable, try again later")
		case errors.Is(err, api.ErrRateLimited):
			log.Printf("Too many attempts, try again later")
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.sessionExpired.Store(false)
	a.currentUser = user
	log.Printf("Login successful")
	return nil
}

// Logout wipes the local session and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.currentUser = nil
	fmt.Println("Logged out")
	return nil
}

// Profile shows the account as the server currently reports it.
func (a *App) Profile(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}
	u := a.currentUser
	fmt.Printf("ID:    %s\nName:  %s\nEmail: %s\n", u.ID, u.Name, u.Email)
	return nil
}
