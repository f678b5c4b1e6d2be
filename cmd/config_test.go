package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := configCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, err := runConfig(t, "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "liarsbid", "config.yaml"), strings.TrimSpace(out))
}

func TestConfigInit_ThenShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := runConfig(t, "init")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "liarsbid", "config.yaml"))
	require.NoError(t, err)

	// a second init must not clobber the file
	_, err = runConfig(t, "init")
	assert.Error(t, err)
	_, err = runConfig(t, "init", "--force")
	assert.NoError(t, err)

	t.Setenv("LIARSBID_NUMERAL_POLICY", "fixed")
	out, err := runConfig(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "policy: fixed")
	assert.Contains(t, out, "key_mappings:")
}
