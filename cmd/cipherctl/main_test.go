package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/config"
)

// execute runs cipherctl with args against an empty config directory and
// returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeWithConfig(t, "", args...)
}

// executeWithConfig is execute with ciphers.yml holding configYAML.
func executeWithConfig(t *testing.T, configYAML string, args ...string) (string, string, error) {
	t.Helper()
	for _, name := range []string{
		"CIPHERS_ALGORITHMS", "CIPHERS_NORMALIZE", "CIPHERS_MAX_TEXT_LENGTH",
		"CIPHERS_LOG_LEVEL", "CIPHERS_LOG_FORMAT", "BIND_ADDRESS", "PORT",
	} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	if configYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(configYAML), 0o600))
	}
	t.Setenv("CIPHERS_CONFIG_PATH", dir)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags undoes flag values left over from a previous run.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
