package pkg

import (
	"os"
	"strings"
	"testing"
)

func TestRandString(t *testing.T) {
	code := RandString(8)
	if len(code) != 8 {
		t.Fatalf("code %q has length %d, want 8", code, len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(string(codeRunes), r) {
			t.Fatalf("code %q contains %q, not in the allowed set", code, r)
		}
	}
	for _, banned := range "01IL O l i" {
		if strings.ContainsRune(string(codeRunes), banned) {
			t.Fatalf("lookalike rune %q in the code alphabet", banned)
		}
	}
}

func TestJWTSecretDefault(t *testing.T) {
	old := os.Getenv("JWT_SECRET")
	defer os.Setenv("JWT_SECRET", old)

	os.Setenv("JWT_SECRET", "")
	if string(JWTSecret()) != "secret" {
		t.Fatalf("empty env did not fall back to the default secret")
	}
	os.Setenv("JWT_SECRET", "hunter2")
	if string(JWTSecret()) != "hunter2" {
		t.Fatalf("env secret not picked up")
	}
}
