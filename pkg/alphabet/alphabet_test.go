package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index('A'))
	assert.Equal(t, 25, Index('Z'))
	assert.Equal(t, -1, Index('a'))
	assert.Equal(t, -1, Index(' '))
	assert.Equal(t, -1, Index('É'))
	assert.True(t, Contains('Q'))
	assert.False(t, Contains('q'))
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		left  string
		right string
	}{
		{"zero", 0, Alphabet, Alphabet},
		{"three", 3, "DEFGHIJKLMNOPQRSTUVWXYZABC", "XYZABCDEFGHIJKLMNOPQRSTUVW"},
		{"full turn", 26, Alphabet, Alphabet},
		{"more than a turn", 29, "DEFGHIJKLMNOPQRSTUVWXYZABC", "XYZABCDEFGHIJKLMNOPQRSTUVW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.left, RotateLeft(Alphabet, tt.n))
			assert.Equal(t, tt.right, RotateRight(Alphabet, tt.n))
		})
	}

	assert.Equal(t, "", RotateLeft("", 5))
	assert.Equal(t, RotateRight(Alphabet, 4), RotateLeft(Alphabet, -4))
}

func TestPermutation_EncryptDecrypt(t *testing.T) {
	p := Permutation(RotateLeft(Alphabet, 3))

	assert.Equal(t, "DEF", p.Encrypt("ABC"))
	assert.Equal(t, "ABC", p.Decrypt("DEF"))

	t.Run("passthrough", func(t *testing.T) {
		in := "hello, World! 123 ñ"
		assert.Equal(t, "hello, Zorld! 123 ñ", p.Encrypt(in))
		assert.Equal(t, in, p.Decrypt(p.Encrypt(in)))
	})

	t.Run("identity", func(t *testing.T) {
		assert.Equal(t, "ZEBRA", Identity().Encrypt("ZEBRA"))
		assert.Equal(t, "ZEBRA", Identity().Decrypt("ZEBRA"))
	})
}

func TestPermutation_DecryptFirstOccurrence(t *testing.T) {
	// I and J both map to F; decrypting F yields the earlier letter.
	p := Permutation("VPTLKIGSFFEDZWXBYUHCRANOQM")

	assert.Equal(t, 'F', p.EncryptRune('I'))
	assert.Equal(t, 'F', p.EncryptRune('J'))
	assert.Equal(t, 'I', p.DecryptRune('F'))
}

func TestPermutation_Bijective(t *testing.T) {
	assert.True(t, Identity().Bijective())
	assert.True(t, Permutation(RotateLeft(Alphabet, 7)).Bijective())
	assert.False(t, Permutation("VPTLKIGSFFEDZWXBYUHCRANOQM").Bijective())
	assert.False(t, Permutation("ABC").Bijective())
}
