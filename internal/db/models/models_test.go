package models

import (
	"strings"
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	hash := HashPassword("secret")

	if hash == "secret" {
		t.Fatal("password must not be stored in plain text")
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected argon2id hash, got %q", hash)
	}

	// same input, different salt
	if HashPassword("secret") == hash {
		t.Error("two hashes of the same password must differ")
	}
}

func TestVerifyPassword(t *testing.T) {
	u := User{Password: HashPassword("secret")}

	if !u.VerifyPassword("secret") {
		t.Error("correct password should verify")
	}

	if u.VerifyPassword("wrong") {
		t.Error("wrong password should not verify")
	}

	// garbage hash never verifies
	u.Password = "not-a-hash"
	if u.VerifyPassword("secret") {
		t.Error("invalid stored hash should not verify")
	}
}

func TestProfileExpYears(t *testing.T) {
	tests := []struct {
		name        string
		careerStart time.Time
		expected    int
	}{
		{
			name:        "zero start",
			careerStart: time.Time{},
			expected:    0,
		},
		{
			name:        "started five years ago",
			careerStart: time.Now().AddDate(-5, 0, 0),
			expected:    5,
		},
		{
			name:        "started six months ago",
			careerStart: time.Now().AddDate(0, -6, 0),
			expected:    0,
		},
		{
			name:        "almost two years",
			careerStart: time.Now().AddDate(-2, 0, 1),
			expected:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{CareerStart: tt.careerStart}
			if got := p.ExpYears(); got != tt.expected {
				t.Errorf("ExpYears() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
