// Package supplement parses the opt-in flags that widen API responses.
//
//	supplements, err := supplement.Parse(r.URL.Query().Get("supplements"), responses.AccountSupplements...)
//	if supplements.HasAny(responses.SupplementEverything, responses.SupplementPrivateDetails) { ... }
package supplement

import (
	"fmt"
	"strings"

	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/validation"
)

// Set is an unordered set of supplements. The zero value is an empty set.
type Set[T ~string] map[T]struct{}

// Of builds a set from values.
func Of[T ~string](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// HasAny reports whether any of values is in the set.
func (s Set[T]) HasAny(values ...T) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Parse reads a comma separated list such as "everything,private_details". Names are
// case-insensitive; blanks are skipped and unknown names are rejected.
func Parse[T ~string](raw string, allowed ...T) (Set[T], error) {
	known := make(map[string]T, len(allowed))
	for _, a := range allowed {
		known[strings.ToUpper(string(a))] = a
	}

	parts := strings.Split(raw, ",")
	if err := validation.CheckSliceCount("supplements", len(parts), validation.MaxSupplements); err != nil {
		return nil, err
	}

	s := Set[T]{}
	for _, part := range parts {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		v, ok := known[name]
		if !ok {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown supplement %q", strings.TrimSpace(part)))
		}
		s[v] = struct{}{}
	}
	return s, nil
}
