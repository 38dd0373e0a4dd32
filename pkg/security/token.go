package security

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

var shareTokenCharset = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// GenerateShareToken produces a random URL-safe token for share links.
func GenerateShareToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	result := make([]rune, length)
	for i := 0; i < length; i++ {
		idx, err := randInt(len(shareTokenCharset))
		if err != nil {
			return "", err
		}
		result[i] = shareTokenCharset[idx]
	}
	return string(result), nil
}

// TokensEqual compares two share tokens without leaking timing information.
func TokensEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// randInt draws uniformly from [0, max). Bytes at or above the largest
// multiple of max are rejected and redrawn, so no residue class is
// over-represented when max does not divide 256.
func randInt(max int) (int, error) {
	if max <= 0 || max > 256 {
		return 0, fmt.Errorf("invalid max %d", max)
	}
	limit := 256 - 256%max
	buff := make([]byte, 1)
	for {
		if _, err := rand.Read(buff); err != nil {
			return 0, err
		}
		if int(buff[0]) < limit {
			return int(buff[0]) % max, nil
		}
	}
}
