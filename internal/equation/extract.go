// Package equation recognizes equation fields — derived metrics written
// as arithmetic over base fields and functions — and extracts the terms
// they reference.
package equation

import "strings"

// Prefix marks a field entry as an equation rather than a raw field.
const Prefix = "equation|"

// IsEquation reports whether a field entry is an equation expression.
func IsEquation(field string) bool {
	return strings.HasPrefix(field, Prefix)
}

// strip removes the equation prefix, leaving the bare expression.
func strip(field string) string {
	return strings.TrimPrefix(field, Prefix)
}

// ExtractFields collects every field and function term referenced by the
// equations in the given field list, deduplicated in first-seen order.
// Non-equation entries and equations that fail to parse are skipped.
func ExtractFields(fields []string) []string {
	terms := []string{}
	seen := map[string]bool{}
	add := func(term string) {
		if seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, field := range fields {
		if !IsEquation(field) {
			continue
		}
		parsed, err := Parse(strip(field))
		if err != nil {
			continue
		}
		for _, f := range parsed.Fields {
			add(f)
		}
		for _, fn := range parsed.Functions {
			add(fn)
		}
	}
	return terms
}
