package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "vscore.dev/pkg/vscore/internal/model"
)

func testMatrix(t *testing.T) *m.SubstitutionMatrix {
	t.Helper()

	matrix, err := m.NewSubstitutionMatrix(
		[]m.Symbol{"A", "V"},
		[][]int{{4, 0}, {0, 4}},
	)
	require.NoError(t, err)

	return matrix
}

func TestScoreRecords(t *testing.T) {
	scored, err := ScoreRecords([]m.VariantRecord{
		{ID: "id1", Ref: "A", Mut: "V"},
	}, testMatrix(t))
	require.NoError(t, err)

	assert.Equal(t, []m.ScoredVariant{{ID: "id1", Score: 0}}, scored)
}

func TestScoreRecords_PreservesInputOrder(t *testing.T) {
	records := []m.VariantRecord{
		{ID: "id3", Ref: "V", Mut: "V"},
		{ID: "id1", Ref: "A", Mut: "V"},
		{ID: "id1", Ref: "A", Mut: "A"},
	}

	scored, err := ScoreRecords(records, testMatrix(t))
	require.NoError(t, err)
	require.Len(t, scored, len(records))

	for i, rec := range records {
		assert.Equal(t, rec.ID, scored[i].ID)
	}

	assert.Equal(t, 4, scored[0].Score)
	assert.Equal(t, 0, scored[1].Score)
	assert.Equal(t, 4, scored[2].Score)
}

func TestScoreRecords_UsesDeclaredDirection(t *testing.T) {
	// The lookup must return matrix[ref][mut] as declared, even when the
	// input table is asymmetric.
	matrix, err := m.NewSubstitutionMatrix(
		[]m.Symbol{"A", "V"},
		[][]int{{4, 7}, {-2, 4}},
	)
	require.NoError(t, err)

	scored, err := ScoreRecords([]m.VariantRecord{
		{ID: "fwd", Ref: "A", Mut: "V"},
		{ID: "rev", Ref: "V", Mut: "A"},
	}, matrix)
	require.NoError(t, err)

	assert.Equal(t, 7, scored[0].Score)
	assert.Equal(t, -2, scored[1].Score)
}

func TestScoreRecords_MissingSymbol(t *testing.T) {
	_, err := ScoreRecords([]m.VariantRecord{
		{ID: "id1", Ref: "A", Mut: "V"},
		{ID: "id2", Ref: "A", Mut: "*"},
	}, testMatrix(t))

	require.ErrorIs(t, err, m.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "id2")
	assert.Contains(t, err.Error(), "A/*")
}

func TestScoreRecords_Empty(t *testing.T) {
	scored, err := ScoreRecords(nil, testMatrix(t))
	require.NoError(t, err)
	assert.Empty(t, scored)
}
