package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubstitutionMatrix(t *testing.T) {
	matrix, err := NewSubstitutionMatrix(
		[]Symbol{"A", "V"},
		[][]int{{4, 0}, {0, 4}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, matrix.Len())
	assert.Equal(t, []Symbol{"A", "V"}, matrix.Symbols())

	score, err := matrix.Score("A", "V")
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	score, err = matrix.Score("A", "A")
	require.NoError(t, err)
	assert.Equal(t, 4, score)
}

func TestNewSubstitutionMatrix_RowCountMismatch(t *testing.T) {
	_, err := NewSubstitutionMatrix([]Symbol{"A", "V"}, [][]int{{4, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not square")
}

func TestNewSubstitutionMatrix_RowLengthMismatch(t *testing.T) {
	_, err := NewSubstitutionMatrix([]Symbol{"A", "V"}, [][]int{{4, 0}, {0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row "V"`)
}

func TestNewSubstitutionMatrix_DuplicateRow(t *testing.T) {
	_, err := NewSubstitutionMatrix([]Symbol{"A", "A"}, [][]int{{4, 0}, {0, 4}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestScore_NoImplicitSymmetrization(t *testing.T) {
	// A deliberately asymmetric table: lookups return exactly what the
	// rows declare.
	matrix, err := NewSubstitutionMatrix(
		[]Symbol{"A", "V"},
		[][]int{{4, 7}, {-2, 4}},
	)
	require.NoError(t, err)

	av, err := matrix.Score("A", "V")
	require.NoError(t, err)

	va, err := matrix.Score("V", "A")
	require.NoError(t, err)

	assert.Equal(t, 7, av)
	assert.Equal(t, -2, va)
}

func TestScore_UnknownSymbol(t *testing.T) {
	matrix, err := NewSubstitutionMatrix([]Symbol{"A"}, [][]int{{4}})
	require.NoError(t, err)

	_, err = matrix.Score("X", "A")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `"X"`)

	_, err = matrix.Score("A", "*")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `"*"`)
}

func TestParseSymbol(t *testing.T) {
	sym, err := ParseSymbol("A")
	require.NoError(t, err)
	assert.Equal(t, Symbol("A"), sym)

	_, err = ParseSymbol("")
	require.Error(t, err)

	_, err = ParseSymbol("AB")
	require.Error(t, err)
}
