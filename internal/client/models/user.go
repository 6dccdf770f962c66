// Package models defines the client-side views of API resources.
package models

// User is the authenticated account as the API reports it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
