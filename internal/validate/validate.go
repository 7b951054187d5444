package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reHex     = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	reContact = regexp.MustCompile(`^[0-9+ -]{7,15}$`)
	reDate    = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	reUser    = regexp.MustCompile(`^[a-z0-9._-]{3,30}$`)
)

// ID validates a simple resource identifier (party/color/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// HexColor validates a #rrggbb swatch value.
func HexColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reHex.MatchString(s)
}

// Contact validates a phone number loosely (digits, +, spaces, dashes).
// Empty is allowed; parties without a phone exist in practice.
func Contact(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reContact.MatchString(s)
}

// Date validates an ISO yyyy-mm-dd string.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDate.MatchString(s)
}

// Username validates an operator login name.
func Username(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reUser.MatchString(s)
}

// Qty parses a quantity and clamps it to zero: non-numeric or negative
// input coerces to 0.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// EnableStatus normalizes the Enable/Disable toggle, defaulting to Enable.
func EnableStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return "Enable", true
	case "Enable", "Disable":
		return s, true
	}
	return "", false
}

// Password enforces a minimal length window for operator credentials.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 64
}
