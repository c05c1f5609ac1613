package auth

import (
	"testing"
	"time"
)

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test-issuer",
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	m := testManager()

	token, jti, err := m.GenerateAccessToken(42, "user@example.com", "user", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if jti == "" {
		t.Fatal("expected a non-empty JTI")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.TokenVersion != 3 {
		t.Errorf("TokenVersion = %d, want 3", claims.TokenVersion)
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q, want %q", claims.ID, jti)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	m := testManager()

	token, _, err := m.GenerateRefreshToken(7, "user@example.com", "user", 0)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := testManager()
	other := NewJWTManager(JWTConfig{
		Secret:        "different-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test-issuer",
	})

	token, _, err := m.GenerateAccessToken(1, "a@b.com", "user", 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager(JWTConfig{
		Secret:        "test-secret",
		Expiry:        -time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "test-issuer",
	})

	token, _, err := m.GenerateAccessToken(1, "a@b.com", "user", 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := m.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	m := testManager()

	refresh, _, err := m.GenerateRefreshToken(9, "r@example.com", "admin", 1)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	access, _, err := m.RefreshAccessToken(refresh, 1)
	if err != nil {
		t.Fatalf("RefreshAccessToken returned error: %v", err)
	}

	claims, err := m.ValidateToken(access)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.UserID != 9 || claims.Role != "admin" {
		t.Errorf("claims = %+v, want user 9 admin", claims)
	}
}

func TestRefreshAccessTokenRejectsAccessToken(t *testing.T) {
	m := testManager()

	access, _, err := m.GenerateAccessToken(9, "r@example.com", "user", 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, _, err := m.RefreshAccessToken(access, 0); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestGetTokenExpiry(t *testing.T) {
	m := testManager()

	token, _, err := m.GenerateAccessToken(1, "a@b.com", "user", 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	exp, err := m.GetTokenExpiry(token)
	if err != nil {
		t.Fatalf("GetTokenExpiry returned error: %v", err)
	}

	want := time.Now().Add(time.Hour)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Errorf("expiry %v not within a minute of %v", exp, want)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := testManager()
	if _, err := m.ValidateToken("not.a.jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}
