package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != PasswordHashCost {
		t.Errorf("expected cost %d, got %d", PasswordHashCost, cost)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")

	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 100))
	if err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if err := ComparePassword(hash, "p1"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := ComparePassword(hash, "p2"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
	err = ComparePassword("not-a-hash", "p1")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected malformed hash error, got %v", err)
	}
}
