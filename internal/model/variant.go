// Package model defines the data structures for variant scoring.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Symbol is a single-character amino-acid code used as a row/column key
// in a substitution matrix.
type Symbol string

// ParseSymbol validates that s is exactly one character.
func ParseSymbol(s string) (Symbol, error) {
	if len(s) != 1 {
		return "", fmt.Errorf("symbol %q must be a single character", s)
	}

	return Symbol(s), nil
}

// VariantRecord is one parsed data line of a VEP-format variant file:
// a free-text identifier plus the reference and mutant amino acids.
// Identifiers need not be unique; input order is preserved end-to-end.
type VariantRecord struct {
	ID  string
	Ref Symbol
	Mut Symbol
}

// ScoredVariant pairs a variant identifier with its substitution score.
type ScoredVariant struct {
	ID    string
	Score int
}
