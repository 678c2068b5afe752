// Package string collects the small text helpers request models and formatters share.
package string

import (
	"strings"
	"unicode"
)

// TrimStrings trims surrounding whitespace from each field in place.
func TrimStrings(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// JoinNonBlank trims each part and joins the non-empty ones with sep.
func JoinNonBlank(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// ToSnakeCase turns a Go field name such as "ContentType" into "content_type".
// Runs of capitals stay together, so "InstitutionID" becomes "institution_id".
func ToSnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && boundaryAt(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func boundaryAt(runes []rune, i int) bool {
	if unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) {
		return true
	}
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
