// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" || hash == "secret1" {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Errorf("expected password to match, got: %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, _ := HashPassword("secret1", bcrypt.MinCost)
	second, _ := HashPassword("secret1", bcrypt.MinCost)

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("secret1", 100)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected no error reading cost, got: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestComparePassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("secret1", bcrypt.MinCost)

	err := ComparePassword(hash, "wrong")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-hash", "secret1")
	if err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}
