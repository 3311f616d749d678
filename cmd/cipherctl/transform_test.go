package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

func TestTransformCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"caesar encrypt", []string{"encrypt", "ABC", "caesar", "x"}, "DEF\n"},
		{"caesar decrypt", []string{"decrypt", "DEF", "caesar", "x"}, "ABC\n"},
		{"caesar passthrough", []string{"encrypt", "ABC, XYZ!", "caesar", "-"}, "DEF, ABC!\n"},
		{"vigenere encrypt", []string{"encrypt", "HELLO", "vigenere", "KEY"}, "RIJVS\n"},
		{"vigenere decrypt", []string{"decrypt", "LXFOPVEFRNHR", "vigenere", "LEMON"}, "ATTACKATDAWN\n"},
		{"wolseley encrypt", []string{"encrypt", "HELLO WORLD", "wolseley", "MONARCHY"}, "SKDDX NXUDL\n"},
		{"wolseley decrypt", []string{"decrypt", "SKDDX NXUDL", "wolseley", "MONARCHY"}, "HELLO WORLD\n"},
		{"zigzag encrypt", []string{"encrypt", "HELLOWORLDAB", "zigzag", "3"}, "HWOBEORALLLD\n"},
		{"zigzag decrypt", []string{"decrypt", "HWOBEORALLLD", "zigzag", "3"}, "HELLOWORLDAB\n"},
		{"algorithm name ignores case", []string{"encrypt", "HELLO", "Vigenere", "KEY"}, "RIJVS\n"},
		{"normalize", []string{"encrypt", "--normalize", "hello", "vigenere", "key"}, "RIJVS\n"},
		{"markdown", []string{"encrypt", "--markdown", "# HELLO `CODE`", "caesar", "-"}, "# KHOOR `CODE`\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestTransformCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown mode", []string{"rot13", "ABC", "caesar", "x"}, cipher.ErrUnknownMode},
		{"mode in wrong case", []string{"ENCRYPT", "ABC", "caesar", "x"}, cipher.ErrUnknownMode},
		{"unknown algorithm", []string{"encrypt", "ABC", "enigma", "x"}, cipher.ErrUnknownAlgorithm},
		{"empty vigenere key", []string{"encrypt", "ABC", "vigenere", ""}, cipher.ErrInvalidKey},
		{"lowercase wolseley key", []string{"encrypt", "ABC", "wolseley", "monarchy"}, cipher.ErrInvalidKey},
		{"zigzag width", []string{"encrypt", "ABC", "zigzag", "three"}, cipher.ErrInvalidKey},
		{"zigzag ragged input", []string{"decrypt", "ABCDE", "zigzag", "3"}, cipher.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, stderr, "Error:")
		})
	}

	t.Run("missing key", func(t *testing.T) {
		_, _, err := execute(t, "encrypt", "ABC", "caesar")
		assert.Error(t, err)
	})

	t.Run("markdown with transposition", func(t *testing.T) {
		_, _, err := execute(t, "encrypt", "--markdown", "ABC", "zigzag", "3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "substitution")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "encrypt", "ABC", "caesar", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--log-level")
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, _, err := execute(t, "--log-format", "xml", "encrypt", "ABC", "caesar", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--log-format")
	})

	t.Run("valid log flags", func(t *testing.T) {
		stdout, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "encrypt", "ABC", "caesar", "x")
		require.NoError(t, err)
		assert.Equal(t, "DEF\n", stdout)
		assert.Contains(t, stderr, `"level":"DEBUG"`)
	})
}

func TestZigZagPaddingWarning(t *testing.T) {
	stdout, stderr, err := execute(t, "encrypt", "HELLOWORLD", "zigzag", "3")
	require.NoError(t, err)

	out := strings.TrimSuffix(stdout, "\n")
	require.Len(t, out, 12)
	assert.Equal(t, "HWO", out[:3])
	assert.Equal(t, "EOR", out[4:7])
	assert.Equal(t, "LLLD", out[8:])
	assert.Contains(t, stderr, "padded")
	assert.Contains(t, stderr, "runes=2")
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "encrypt")
}
