package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "vscore.dev/pkg/vscore/internal/model"
)

func TestLocalResultStore_Write(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "out.tsv"))
	store := NewLocalResultStore()

	err := store.Write(path, []m.ScoredVariant{
		{ID: "id1", Score: 0},
		{ID: "id2", Score: -3},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "# ID\tScore\nid1\t0\nid2\t-3\n", string(data))
}

func TestLocalResultStore_WriteEmpty(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "out.tsv"))
	store := NewLocalResultStore()

	require.NoError(t, store.Write(path, nil))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "# ID\tScore\n", string(data))
}

func TestLocalResultStore_WriteIsIdempotent(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "out.tsv"))
	store := NewLocalResultStore()
	scored := []m.ScoredVariant{{ID: "id1", Score: 4}}

	require.NoError(t, store.Write(path, scored))
	first, err := os.ReadFile(string(path))
	require.NoError(t, err)

	require.NoError(t, store.Write(path, scored))
	second, err := os.ReadFile(string(path))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLocalResultStore_ReadRoundTrip(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "out.tsv"))
	store := NewLocalResultStore()
	scored := []m.ScoredVariant{
		{ID: "id1", Score: 0},
		{ID: "id2", Score: 11},
	}

	require.NoError(t, store.Write(path, scored))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, scored, got)
}

func TestLocalResultStore_ReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# ID\tScore\nid1\tabc\n"), 0o600))

	store := NewLocalResultStore()

	_, err := store.Read(m.Path(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}
