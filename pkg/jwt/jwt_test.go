package jwt

import (
	"testing"
	"time"

	"github.com/yash6314/invigilationMailService/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-0123456789",
		AccessTokenTTL: ttl,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	tokenStr, err := m.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(tokenStr)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username=admin, got %s", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected a non-empty JTI")
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	tokenStr, err := m.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := m.ParseToken(tokenStr); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	tokenStr, err := m.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-key-987654321",
		AccessTokenTTL: 15 * time.Minute,
	})
	if _, err := other.ParseToken(tokenStr); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	if _, err := m.ParseToken("not.a.token"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
