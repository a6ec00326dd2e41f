package jwt

import (
	"errors"
	"testing"
	"time"

	"Fridgify-Backend/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	token, err := svc.GenerateAccessToken("11111111-1111-1111-1111-111111111111", "alice")
	if err != nil {
		t.Fatal(err)
	}

	userID, login, err := svc.GetUserByAccessToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != "11111111-1111-1111-1111-111111111111" || login != "alice" {
		t.Fatalf("unexpected claims: %s %s", userID, login)
	}
}

// A token signed with one secret must not verify against the other.
func TestTokenSecretSeparation(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	access, err := svc.GenerateAccessToken("u1", "alice")
	if err != nil {
		t.Fatal(err)
	}
	refresh, err := svc.GenerateRefreshToken("u1", "alice")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.GetUserByRefreshToken(access); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("access token accepted by refresh verifier: %v", err)
	}
	if _, _, err := svc.GetUserByAccessToken(refresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("refresh token accepted by access verifier: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	j := &jwtService{
		accessSecret:  "access-secret",
		refreshSecret: "refresh-secret",
		issuer:        "FRIDGIFY",
	}

	// Correctly signed but already past its expiry.
	token, err := j.generate("u1", "alice", j.accessSecret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := j.GetUserByAccessToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	if _, _, err := svc.GetUserByAccessToken("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}
