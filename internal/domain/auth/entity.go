package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials indicates a login failure. Unknown usernames and
	// wrong passwords both map here so callers cannot probe which accounts
	// exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound indicates missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenInvalid means a supplied token cannot be validated.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrTokenMissing means no bearer token accompanied the request.
	ErrTokenMissing = errors.New("authorization token required")
)

// User models the authentication entity persisted in storage.
// The password hash never serialises into responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Username string
	Password string
}
