package query

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// foldKey canonicalizes a string for case-insensitive matching.
// NFC normalization first, so visually identical text compares equal
// regardless of the Unicode composition the seed data arrived in.
func foldKey(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
