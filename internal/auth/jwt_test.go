package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_GenerateAndParse(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	token, err := manager.GenerateToken("op-1", "ops@example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "op-1" || claims.Email != "ops@example.com" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != Issuer {
		t.Fatalf("expected issuer %s, got %s", Issuer, claims.Issuer)
	}

	if _, err := manager.ParseToken(token + "tampered"); err == nil {
		t.Fatalf("expected parse error for tampered token")
	}
	if _, err := NewJWTManager("other-secret", time.Hour).ParseToken(token); err == nil {
		t.Fatalf("expected parse error for foreign secret")
	}
}

func TestJWTManager_EmptySecret(t *testing.T) {
	manager := NewJWTManager("", time.Hour)
	if _, err := manager.GenerateToken("op", "ops@example.com", "marketer"); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute)
	manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := manager.GenerateToken("op-1", "ops@example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manager.now = time.Now
	if _, err := manager.ParseToken(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestJWTManager_RejectsForeignIssuer(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "op-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewJWTManager("secret", 0).ParseToken(token); err == nil {
		t.Fatalf("expected issuer mismatch to fail")
	}
}

func TestJWTManager_DefaultTTL(t *testing.T) {
	if ttl := NewJWTManager("secret", 0).TTL(); ttl != 24*time.Hour {
		t.Fatalf("expected default ttl 24h, got %s", ttl)
	}
}
