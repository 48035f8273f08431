package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxSelectionLength is the longest form type or center accepted, in characters.
const MaxSelectionLength = 64

// SelectionPattern accepts any printable form type or center as it appears in
// the feed, e.g. "I-129", "I-129 F" or "WAC". Control characters and a
// leading space are rejected.
var SelectionPattern = regexp.MustCompile(`^[^\p{C}\s][^\p{C}]*$`)

// ValidateSelectionValue checks if a form type or center code matches the allowed pattern.
func ValidateSelectionValue(value string) bool {
	if value == "" || utf8.RuneCountInString(value) > MaxSelectionLength {
		return false
	}
	return SelectionPattern.MatchString(value)
}

// ValidateFeedURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateFeedURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateStatusColor checks the "#rrggbb" color format used by status overrides.
func ValidateStatusColor(color string) bool {
	return statusColorPattern.MatchString(color)
}

var statusColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
