package jwtutil

import (
	"testing"
)

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("super-secret"), Issuer: "ieltsim", ExpHours: 24}

	tok, err := s.Sign(42, "alice")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("claims mismatch: got uid=%d uname=%q", claims.UserID, claims.Username)
	}
	if claims.Issuer != "ieltsim" {
		t.Fatalf("issuer mismatch: %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti claim")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatalf("expected expiry after issue time")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("secret"), Issuer: "ieltsim", ExpHours: -1}
	tok, err := s.Sign(1, "bob")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if _, err := s.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	right := &Signer{Secret: []byte("right"), Issuer: "ieltsim", ExpHours: 1}
	wrong := &Signer{Secret: []byte("wrong"), Issuer: "ieltsim", ExpHours: 1}

	tok, err := right.Sign(2, "carol")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if _, err := wrong.Parse(tok); err == nil {
		t.Fatalf("expected error for bad signature, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("k"), Issuer: "ieltsim", ExpHours: 1}
	if _, err := s.Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
