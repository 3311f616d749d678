package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaesar(t *testing.T) {
	c := NewCaesar()

	tests := []struct {
		name      string
		plaintext string
		expected  string
	}{
		{"rotate by three", "ABC", "DEF"},
		{"wraps around", "XYZ", "ABC"},
		{"mixed", "HELLO, WORLD!", "KHOOR, ZRUOG!"},
		{"lowercase untouched", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.Encrypt(tt.plaintext, "whatever")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)

			back, err := c.Decrypt(out, "")
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, back)
		})
	}
}

func TestCaesar_ZeroValue(t *testing.T) {
	out, err := Caesar{}.Encrypt("ABC", "")
	require.NoError(t, err)
	assert.Equal(t, "DEF", out)
}
