package security_test

import (
	"testing"

	"github.com/dormpack/dormpack-backend/pkg/security"
)

func TestSafeURL(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"https://store.example.com/item/42", true},
		{"http://example.com", true},
		{"javascript:alert(1)", false},
		{"data:text/html,<script>", false},
		{"ftp://example.com/file", false},
		{"//example.com/protocol-relative", false},
		{"not a url", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := security.SafeURL(tc.value); got != tc.want {
			t.Errorf("SafeURL(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
