package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	role := "Admin"

	token, expiresAt, err := tm.GenerateToken(7, "admin@example.com", &role)
	if err != nil {
		t.Fatalf("GenerateToken returned err: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry must be in the future, got %s", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned err: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("email claim = %q", claims.Email)
	}
	if claims.Role == nil || *claims.Role != "Admin" {
		t.Fatalf("role claim = %+v", claims.Role)
	}
	userID, err := claims.UserID()
	if err != nil || userID != 7 {
		t.Fatalf("subject = (%d, %v)", userID, err)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken(7, "admin@example.com", nil)
	if err != nil {
		t.Fatalf("GenerateToken returned err: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	if _, err := tm.ParseToken("not-a-token"); err == nil {
		t.Fatal("malformed token must not validate")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!", 4)
	if err != nil {
		t.Fatalf("HashPassword returned err: %v", err)
	}
	if err := ComparePassword(hash, "s3cret!"); err != nil {
		t.Fatalf("ComparePassword rejected correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("ComparePassword accepted wrong password")
	}
}
