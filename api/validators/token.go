package validators

import (
	"net/http"
	"strings"
)

// ShareTokenFromRequest extracts a share token from the request. The token
// travels in the ?token= query parameter; an X-Share-Token header is accepted
// as a fallback for clients that prefer not to log tokens in URLs.
func ShareTokenFromRequest(r *http.Request) string {
	if token := strings.TrimSpace(r.URL.Query().Get("token")); token != "" {
		return token
	}
	return strings.TrimSpace(r.Header.Get("X-Share-Token"))
}
