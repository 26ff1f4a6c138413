package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateAccessToken(42, "jane@example.com", "recruiter")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != "recruiter" {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected token type %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestRefreshTokenHasNoProfileClaims(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token")
	}
	if claims.Email != "" || claims.Role != "" {
		t.Fatalf("refresh token should not carry email/role")
	}
}

func TestExpiredToken(t *testing.T) {
	svc := newTestService()

	base := time.Now()
	svc.now = func() time.Time { return base }

	tok, err := svc.GenerateAccessToken(1, "a@b.c", "jobseeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return base.Add(16 * time.Minute) }

	_, err = svc.ValidateToken(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTamperedToken(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateAccessToken(1, "a@b.c", "jobseeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewHMACService("other-access", "other-refresh", 15*time.Minute, 24*time.Hour)
	_, err = other.ValidateToken(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
