package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret!" {
		t.Fatal("password stored in clear")
	}
	if err := CheckPassword(hash, "s3cret!"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
}

func TestTokenIssueAndParse(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, user.RoleChef)
	if err != nil {
		t.Fatal(err)
	}
	actor, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if actor.UserID != 42 || actor.Role != user.RoleChef {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestTokenExpired(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret", time.Hour).WithClock(func() time.Time { return issuedAt })
	token, err := svc.Issue(1, user.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	later := svc.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })
	if _, err := later.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token accepted: %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _ := NewTokenService("one", time.Hour).Issue(1, user.RoleFoodLover)
	if _, err := NewTokenService("two", time.Hour).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign token accepted: %v", err)
	}
}

func TestTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		Role: string(user.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokenService("s", time.Hour).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unsigned token accepted: %v", err)
	}
}

func TestTokenRejectsUnknownRole(t *testing.T) {
	svc := NewTokenService("s", time.Hour)
	token, _ := svc.Issue(1, user.Role("Root"))
	if _, err := svc.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unknown role accepted: %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := NewTokenService("s", time.Hour).Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage accepted: %v", err)
	}
}
