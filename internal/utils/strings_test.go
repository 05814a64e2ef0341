package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafeRedirect(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		expected bool
	}{
		{"ShouldRejectEmpty", "", false},
		{"ShouldAcceptRootRelativePath", "/dashboard", true},
		{"ShouldAcceptPathWithQuery", "/portfolio?tab=holdings", true},
		{"ShouldRejectSchemeRelative", "//evil.example.com/phish", false},
		{"ShouldRejectBackslashSchemeRelative", "/\\evil.example.com", false},
		{"ShouldRejectAbsoluteURL", "https://evil.example.com/", false},
		{"ShouldRejectJavascriptScheme", "javascript:alert(1)", false},
		{"ShouldRejectRelativePath", "dashboard", false},
		{"ShouldRejectControlCharacters", "/dash\nboard", false},
		{"ShouldRejectDelete", "/dash\x7fboard", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSafeRedirect(tc.target))
		})
	}
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/portfolio", SafeRedirect("/portfolio", "/dashboard"))
	assert.Equal(t, "/dashboard", SafeRedirect("https://evil.example.com/", "/dashboard"))
	assert.Equal(t, "/dashboard", SafeRedirect("", "/dashboard"))
}

func TestRedactEmail(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		expected string
	}{
		{"ShouldRedactMiddle", "ana.souza@example.com", "a*******a@example.com"},
		{"ShouldRedactShortLocalPart", "ab@example.com", "**@example.com"},
		{"ShouldRedactSingleCharacter", "a@example.com", "*@example.com"},
		{"ShouldReturnEmptyForInvalid", "not-an-email", ""},
		{"ShouldReturnEmptyForDoubleAt", "a@b@c", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RedactEmail(tc.email))
		})
	}
}

func TestIsStringInSlice(t *testing.T) {
	assert.True(t, IsStringInSlice("b", []string{"a", "b", "c"}))
	assert.False(t, IsStringInSlice("d", []string{"a", "b", "c"}))
	assert.False(t, IsStringInSlice("a", nil))
}
