package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/models"
	"github.com/google/uuid"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  models.RoleAdmin,
	}
}

func TestGenerateAndVerify(t *testing.T) {
	svc := NewTokenService(testConfig())
	user := testUser()

	pair, err := svc.GenerateTokens(user)
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("expected user id %s, got %s", user.ID, claims.UserID)
		}
		if claims.Email != user.Email {
			t.Errorf("expected email %q, got %q", user.Email, claims.Email)
		}
		if claims.Role != models.RoleAdmin {
			t.Errorf("expected role admin, got %q", claims.Role)
		}
	}
}

func TestPairShape(t *testing.T) {
	svc := NewTokenService(testConfig())

	pair, err := svc.GenerateTokens(testUser())
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}
	if pair.TokenType != "Bearer" {
		t.Errorf("expected token type 'Bearer', got %q", pair.TokenType)
	}
	if pair.ExpiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", pair.ExpiresIn)
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("expected distinct access and refresh tokens")
	}
}

func TestSuccessivePairsDiffer(t *testing.T) {
	svc := NewTokenService(testConfig())
	user := testUser()

	first, _ := svc.GenerateTokens(user)
	second, _ := svc.GenerateTokens(user)
	if first.RefreshToken == second.RefreshToken {
		t.Error("expected rotation to produce a distinct refresh token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	pair, err := NewTokenService(testConfig()).GenerateTokens(testUser())
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	other := NewTokenService(&config.Config{
		JWTSecret:        "different-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	})
	if _, err := other.Verify(pair.AccessToken); err == nil {
		t.Error("expected verification to fail with wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	expired := NewTokenService(&config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  -time.Minute,
		JWTRefreshExpiry: -time.Minute,
	})
	pair, err := expired.GenerateTokens(testUser())
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := expired.Verify(pair.AccessToken); err == nil {
		t.Error("expected verification of expired token to fail")
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService(testConfig())
	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
