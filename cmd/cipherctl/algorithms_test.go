package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmsCommand(t *testing.T) {
	stdout, _, err := execute(t, "algorithms")
	require.NoError(t, err)

	assert.Contains(t, stdout, "ALGORITHM")
	for _, name := range []string{"caesar", "vigenere", "wolseley", "zigzag"} {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "positive integer column width")
	assert.Contains(t, stdout, "transposition")
	assert.NotContains(t, stdout, "disabled")
}

func TestAlgorithmsCommandReportsDisabled(t *testing.T) {
	stdout, _, err := executeWithConfig(t, "algorithms: [caesar]\n", "algorithms")
	require.NoError(t, err)
	assert.Contains(t, stdout, "disabled")
}

func TestConfigurationShowCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		stdout, _, err := execute(t, "configuration", "show")
		require.NoError(t, err)
		assert.Contains(t, stdout, "max_text_length")
		assert.Contains(t, stdout, "default")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := execute(t, "configuration", "show", "-o", "json")
		require.NoError(t, err)

		var parsed interface{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &parsed))
		assert.Contains(t, stdout, "max_text_length")
	})

	t.Run("file source", func(t *testing.T) {
		stdout, _, err := executeWithConfig(t, "port: 9000\n", "configuration", "show")
		require.NoError(t, err)
		assert.Regexp(t, `port\s+9000\s+file`, stdout)
	})

	t.Run("unknown output", func(t *testing.T) {
		_, _, err := execute(t, "configuration", "show", "-o", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("requires subcommand", func(t *testing.T) {
		_, _, err := execute(t, "configuration")
		assert.Error(t, err)
	})
}
