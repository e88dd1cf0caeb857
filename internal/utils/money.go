package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPrice is returned when a string cannot be read as a non-negative
// decimal amount with at most two fractional digits.
var ErrBadPrice = errors.New("invalid price")

// ParsePrice converts a decimal string such as "19.99" into integer cents.
// Prices are carried as cents everywhere in Go and bound to DECIMAL(10,2)
// columns as strings, so totals never pick up float rounding error.
// Negative amounts and more than two fractional digits are rejected.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrBadPrice
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrBadPrice
	}
	// pad "5" -> "50" so .5 means fifty cents
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	return w*100 + f, nil
}

// FormatCents renders integer cents as a decimal string with exactly two
// fractional digits, the form stored in DECIMAL(10,2) columns and shown to
// the user.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
