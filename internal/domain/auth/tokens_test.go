package auth

import (
	"testing"
	"time"
)

func newTestTokenService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)
}

func TestIssuePairRoundTrip(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.IssuePair(42, "admin@example.com")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if pair.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", pair.TokenType)
	}

	claims, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	id, err := claims.SubjectID()
	if err != nil {
		t.Fatalf("subject id: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}

	refreshClaims, err := svc.VerifyRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
	if refreshClaims.Email != "" {
		t.Fatal("refresh token should not carry the email claim")
	}
}

func TestKeyDomainsNotInterchangeable(t *testing.T) {
	svc := newTestTokenService()

	pair, err := svc.IssuePair(7, "admin@example.com")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	if _, err := svc.VerifyRefresh(pair.AccessToken); err == nil {
		t.Fatal("access token must not verify against the refresh key")
	}
	if _, err := svc.VerifyAccess(pair.RefreshToken); err == nil {
		t.Fatal("refresh token must not verify against the access key")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	pair, err := svc.IssuePair(7, "admin@example.com")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if _, err := svc.VerifyAccess(pair.AccessToken); err == nil {
		t.Fatal("expired access token must be rejected")
	}
	if _, err := svc.VerifyRefresh(pair.RefreshToken); err == nil {
		t.Fatal("expired refresh token must be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := CheckPassword(hash, "password123"); err != nil {
		t.Fatalf("check password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password must not verify")
	}
}
