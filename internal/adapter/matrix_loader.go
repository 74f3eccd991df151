// Package adapter contains file-format adapters for the vscore CLI. It
// hides direct os access so the pipeline logic can be tested against
// in-memory readers.
package adapter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	m "vscore.dev/pkg/vscore/internal/model"
)

// MatrixLoader reads a substitution matrix from disk.
type MatrixLoader interface {
	Load(path m.Path) (*m.SubstitutionMatrix, error)
}

// LocalMatrixLoader parses whitespace-delimited matrix files such as the
// raw BLOSUM62 distribution.
type LocalMatrixLoader struct{}

// NewLocalMatrixLoader constructs a LocalMatrixLoader ready to be wired
// into the pipeline.
func NewLocalMatrixLoader() *LocalMatrixLoader {
	return &LocalMatrixLoader{}
}

// Load reads and parses the matrix file at path.
func (l *LocalMatrixLoader) Load(path m.Path) (*m.SubstitutionMatrix, error) {
	fh, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open matrix file: %w", err)
	}

	defer func() { _ = fh.Close() }()

	matrix, err := ParseMatrix(fh, string(path))
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded substitution matrix", "path", path, "symbols", matrix.Len())

	return matrix, nil
}

// ParseMatrix parses matrix text from r; name is used in error messages.
//
// Lines starting with '#' and blank lines are skipped. The first
// remaining line is taken as the column-header row when its trailing
// tokens are not all integers. Every data line is a row symbol followed
// by one integer score per row symbol, left to right in row order.
func ParseMatrix(r io.Reader, name string) (*m.SubstitutionMatrix, error) {
	var (
		symbols []m.Symbol
		rows    [][]int
	)

	first := true
	sc := bufio.NewScanner(r)
	ln := 0

	for sc.Scan() {
		ln++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if first {
			first = false
			if !allIntegers(fields[1:]) {
				continue
			}
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: matrix row %q has no scores", name, ln, fields[0])
		}

		sym, err := m.ParseSymbol(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad row symbol: %w", name, ln, err)
		}

		scores := make([]int, 0, len(fields)-1)

		for _, tok := range fields[1:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: score %q is not an integer", name, ln, tok)
			}

			scores = append(scores, v)
		}

		symbols = append(symbols, sym)
		rows = append(rows, scores)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: no matrix rows found", name)
	}

	matrix, err := m.NewSubstitutionMatrix(symbols, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return matrix, nil
}

func allIntegers(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}

	for _, tok := range tokens {
		if _, err := strconv.Atoi(tok); err != nil {
			return false
		}
	}

	return true
}
