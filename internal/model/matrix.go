package model

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned when a lookup references a symbol that is
// not part of the matrix alphabet.
var ErrUnknownSymbol = errors.New("symbol not in matrix")

// SubstitutionMatrix maps ordered symbol pairs to integer scores. It is
// built once by the matrix loader and read-only afterwards.
//
// Lookups do not symmetrize: Score(a, b) returns exactly what the input
// file declared for row a, column b. Symmetry is a property of the file,
// not something the matrix enforces.
type SubstitutionMatrix struct {
	symbols []Symbol
	scores  map[Symbol]map[Symbol]int
}

// NewSubstitutionMatrix builds a matrix from row symbols and a square
// score table. rows[i][j] is the score for symbols[i] against symbols[j].
func NewSubstitutionMatrix(symbols []Symbol, rows [][]int) (*SubstitutionMatrix, error) {
	if len(rows) != len(symbols) {
		return nil, fmt.Errorf("matrix is not square: %d symbols, %d rows", len(symbols), len(rows))
	}

	scores := make(map[Symbol]map[Symbol]int, len(symbols))

	for i, sym := range symbols {
		if len(rows[i]) != len(symbols) {
			return nil, fmt.Errorf("matrix is not square: row %q has %d scores, want %d", sym, len(rows[i]), len(symbols))
		}

		if _, dup := scores[sym]; dup {
			return nil, fmt.Errorf("duplicate matrix row %q", sym)
		}

		row := make(map[Symbol]int, len(symbols))
		for j, other := range symbols {
			row[other] = rows[i][j]
		}

		scores[sym] = row
	}

	return &SubstitutionMatrix{symbols: symbols, scores: scores}, nil
}

// Symbols returns the matrix alphabet in declaration order.
func (m *SubstitutionMatrix) Symbols() []Symbol {
	out := make([]Symbol, len(m.symbols))
	copy(out, m.symbols)

	return out
}

// Len returns the number of symbols in the alphabet.
func (m *SubstitutionMatrix) Len() int {
	return len(m.symbols)
}

// Score looks up the score for reference a against mutant b. A symbol
// absent from the alphabet is an error, never a default score.
func (m *SubstitutionMatrix) Score(a, b Symbol) (int, error) {
	row, ok := m.scores[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	}

	score, ok := row[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}

	return score, nil
}
