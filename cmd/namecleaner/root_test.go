package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	force := rootCmd.Flags().Lookup("force")
	require.NotNil(t, force, "--force flag not registered")
	assert.Equal(t, "f", force.Shorthand)
	assert.Equal(t, "false", force.DefValue)

	for _, name := range []string{"log-format", "color", "config", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "--%s not registered", name)
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Keep Me"), nil, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{dir, "extra", "-f"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "Usage:")

	_, statErr := os.Stat(filepath.Join(dir, "Keep Me"))
	assert.NoError(t, statErr)
}

func TestRootCmd_SubcommandNamedDirectory(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"plan"})
	require.NoError(t, err)
	assert.Equal(t, planCmd, cmd)

	cmd, args, err := rootCmd.Find([]string{"./plan", "-f"})
	require.NoError(t, err)
	assert.Equal(t, rootCmd, cmd)
	assert.Equal(t, []string{"./plan", "-f"}, args)

	assert.Contains(t, rootCmd.Long, "./plan")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "namecleaner dev\n", out.String())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("NAMECLEANER_TEST_KEY", "")
	assert.Equal(t, "fallback", envOr("NAMECLEANER_TEST_KEY", "fallback"))
	t.Setenv("NAMECLEANER_TEST_KEY", "json")
	assert.Equal(t, "json", envOr("NAMECLEANER_TEST_KEY", "fallback"))
}
