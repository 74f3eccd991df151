package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCmd(t *testing.T) {
	dir := t.TempDir()

	scores := filepath.Join(dir, "result.tsv")
	require.NoError(t, os.WriteFile(scores, []byte("# ID\tScore\nid1\t0\nid2\t-3\n"), 0o600))

	cmd := newTestRoot()
	cmd.AddCommand(newViewCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"view", scores, "--log-file", filepath.Join(dir, "test.log")})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "id1")
	assert.Contains(t, out.String(), "id2")
	assert.Contains(t, out.String(), "-3")
}

func TestViewCmd_MissingFile(t *testing.T) {
	dir := t.TempDir()

	cmd := newTestRoot()
	cmd.AddCommand(newViewCmd())
	cmd.SetArgs([]string{
		"view", filepath.Join(dir, "nope.tsv"),
		"--log-file", filepath.Join(dir, "test.log"),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open score file")
}
