package utils

import (
	"net/url"
	"strings"
)

// IsStringInSlice checks if a single string is in a slice of strings.
func IsStringInSlice(needle string, haystack []string) (inSlice bool) {
	for _, b := range haystack {
		if b == needle {
			return true
		}
	}

	return false
}

// IsSafeRedirect reports whether target is a same-origin relative path. A safe
// target must start with "/" but not "//" or "/\" (both are treated as
// scheme-relative by browsers) and must carry no scheme, host or control
// characters. Anything else is attacker-reachable open-redirect input.
func IsSafeRedirect(target string) bool {
	if target == "" {
		return false
	}

	if !strings.HasPrefix(target, "/") {
		return false
	}

	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}

	for _, r := range target {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}

	if parsed.Scheme != "" || parsed.Host != "" {
		return false
	}

	return true
}

// SafeRedirect returns target when it passes IsSafeRedirect, and fallback
// otherwise. Unsafe targets are silently discarded, never surfaced as errors.
func SafeRedirect(target, fallback string) string {
	if IsSafeRedirect(target) {
		return target
	}

	return fallback
}

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}
