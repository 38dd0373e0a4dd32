package security

import "net/url"

// SafeURL reports whether the value parses as an absolute http or https URL.
// Rejects javascript:, data:, and other scriptable schemes outright.
func SafeURL(value string) bool {
	if value == "" {
		return false
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
