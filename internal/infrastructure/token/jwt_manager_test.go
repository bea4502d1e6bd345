package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour, "liga")

	tok, err := m.Generate("user-123", "alice")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if tok == "" {
		t.Fatal("Generate returned an empty token")
	}

	userID, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("user id mismatch: got %q want %q", userID, "user-123")
	}
}

func TestGenerate_EmbedsUsernameClaim(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour, "liga")

	tok, err := m.Generate("user-123", "alice")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	parsed, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("super-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims.Username != "alice" {
		t.Fatalf("username claim mismatch: got %q want %q", claims.Username, "alice")
	}
	if claims.UserID != "user-123" {
		t.Fatalf("uid claim mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expiry claim missing")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -time.Second, "liga")

	tok, err := m.Generate("u1", "bob")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := m.Validate(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	} else if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTManager("right-secret", time.Hour, "liga").Generate("u2", "carol")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := NewJWTManager("wrong-secret", time.Hour, "liga").Validate(tok); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", time.Hour, "liga")
	if _, err := m.Validate("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
