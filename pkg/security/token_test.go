package security_test

import (
	"testing"

	"github.com/dormpack/dormpack-backend/pkg/security"
)

func TestGenerateShareToken(t *testing.T) {
	token, err := security.GenerateShareToken(8)
	if err != nil {
		t.Fatalf("GenerateShareToken returned error: %v", err)
	}
	if len(token) != 8 {
		t.Fatalf("expected 8-character token, got %q", token)
	}
	for _, r := range token {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			t.Fatalf("token contains unexpected character %q", r)
		}
	}

	other, err := security.GenerateShareToken(8)
	if err != nil {
		t.Fatalf("GenerateShareToken returned error: %v", err)
	}
	if token == other {
		t.Fatal("two generated tokens collided")
	}
}

func TestGenerateShareTokenDrawsUniformly(t *testing.T) {
	// A byte reduced mod 36 without rejection lands on 'a'..'d' with
	// probability 8/256 each instead of 1/36. Over 200k characters that
	// inflates their combined count from ~22222 to ~25000, far outside
	// sampling noise, so a biased generator trips the threshold.
	const draws = 25000
	counts := make(map[rune]int)
	for i := 0; i < draws; i++ {
		token, err := security.GenerateShareToken(8)
		if err != nil {
			t.Fatalf("GenerateShareToken returned error: %v", err)
		}
		for _, r := range token {
			counts[r]++
		}
	}

	lowRange := counts['a'] + counts['b'] + counts['c'] + counts['d']
	if lowRange > 23500 {
		t.Fatalf("chars a-d over-represented: %d of %d draws", lowRange, draws*8)
	}
	for r := 'a'; r <= 'z'; r++ {
		if counts[r] == 0 {
			t.Fatalf("char %q never drawn", r)
		}
	}
	for r := '0'; r <= '9'; r++ {
		if counts[r] == 0 {
			t.Fatalf("char %q never drawn", r)
		}
	}
}

func TestGenerateShareTokenRejectsBadLength(t *testing.T) {
	if _, err := security.GenerateShareToken(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestTokensEqual(t *testing.T) {
	if !security.TokensEqual("abc123xy", "abc123xy") {
		t.Fatal("identical tokens should match")
	}
	if security.TokensEqual("abc123xy", "abc123xz") {
		t.Fatal("different tokens should not match")
	}
	if security.TokensEqual("abc123xy", "") {
		t.Fatal("empty token should not match")
	}
}
