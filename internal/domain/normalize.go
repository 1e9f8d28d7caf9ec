package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel prepares a catalog label for storage and uniqueness checks:
//   - applies Unicode NFC so composed and decomposed forms compare equal
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved; labels are human-language strings (Arabic, French).
func NormalizeLabel(label string) string {
	label = norm.NFC.String(label)
	return strings.Join(strings.Fields(label), " ")
}

// EscapeLike escapes LIKE/ILIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
