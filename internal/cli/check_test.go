package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheckCmd(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewCheckCommand(opts)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckFormattedFile(t *testing.T) {
	path := writeTemp(t, "@misc{k,\n  title = {x}\n}\n")

	out, err := runCheckCmd(t, &RootOptions{}, path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckUnformattedFile(t *testing.T) {
	path := writeTemp(t, "@misc{k,title={x}}\n")

	out, err := runCheckCmd(t, &RootOptions{}, path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, path)
}

func TestCheckFormattedFileWithFreeText(t *testing.T) {
	path := writeTemp(t, "Exported notes.\n\n@misc{k,\n  title = {x}\n}\n")

	out, err := runCheckCmd(t, &RootOptions{}, path)
	require.NoError(t, err)
	assert.Empty(t, out, "free text alone must not flag a file")
}

func TestCheckCountsUnformatted(t *testing.T) {
	good := writeTemp(t, "@misc{k,\n  title = {x}\n}\n")
	bad := filepath.Join(t.TempDir(), "bad.bib")
	require.NoError(t, os.WriteFile(bad, []byte("@misc{k ,title={x}}"), 0o644))

	out, err := runCheckCmd(t, &RootOptions{}, good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 file(s)")
	assert.NotContains(t, out, good)
	assert.Contains(t, out, bad)
}

func TestCheckMissingFileIsCommandError(t *testing.T) {
	_, err := runCheckCmd(t, &RootOptions{}, filepath.Join(t.TempDir(), "absent.bib"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0, 2)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "format")
	assert.Contains(t, names, "check")

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
}
