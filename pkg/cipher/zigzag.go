package cipher

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/alphabet"
)

// ZigZag writes the text into rows of key runes, reverses every other row and
// reads the grid off column by column. The key is the column width in both
// directions.
type ZigZag struct {
	rand *lockedRand
}

// NewZigZag returns a zig-zag cipher. Without [WithRand] padding comes from
// the math/rand/v2 global source.
func NewZigZag(opts ...Option) *ZigZag {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &ZigZag{rand: o.rand}
}

func (*ZigZag) Algorithm() Algorithm {
	return AlgorithmZigZag
}

// ParseWidth parses a zig-zag key.
func ParseWidth(key string) (int, error) {
	width, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("%w: zigzag key %q is not an integer", ErrInvalidKey, key)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%w: zigzag key must be positive, got %d", ErrInvalidKey, width)
	}
	return width, nil
}

// MaxWidth bounds the zig-zag key so padding stays allocatable.
const MaxWidth = 1 << 24

// PadLength returns how many random runes encryption appends to a text of n
// runes at the given width.
func PadLength(n, width int) int {
	if n == 0 || width <= 0 {
		return 0
	}
	if r := n % width; r != 0 {
		return width - r
	}
	return 0
}

func (z *ZigZag) Encrypt(text, key string) (string, error) {
	out, _, err := z.EncryptWithPadding(text, key)
	return out, err
}

// EncryptWithPadding encrypts like Encrypt and also returns the number of
// padding runes, which decryption will not strip.
func (z *ZigZag) EncryptWithPadding(text, key string) (string, int, error) {
	width, err := ParseWidth(key)
	if err != nil {
		return "", 0, err
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return "", 0, nil
	}

	if width > MaxWidth {
		return "", 0, fmt.Errorf("%w: zigzag width too large, %d exceeds %d", ErrInvalidKey, width, MaxWidth)
	}

	padding := PadLength(len(runes), width)
	runes = slices.Grow(runes, padding)
	for k := 0; k < padding; k++ {
		runes = append(runes, z.padRune())
	}

	rows := len(runes) / width
	for r := 1; r < rows; r += 2 {
		slices.Reverse(runes[r*width : (r+1)*width])
	}

	var b strings.Builder
	b.Grow(len(runes))
	for c := 0; c < width; c++ {
		for r := 0; r < rows; r++ {
			b.WriteRune(runes[r*width+c])
		}
	}
	return b.String(), padding, nil
}

func (z *ZigZag) Decrypt(text, key string) (string, error) {
	width, err := ParseWidth(key)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return "", nil
	}
	if len(runes)%width != 0 {
		return "", fmt.Errorf("%w: zigzag text of %d runes does not fill rows of %d", ErrMalformedInput, len(runes), width)
	}

	// Column c of the grid is the run runes[c*rows : (c+1)*rows].
	rows := len(runes) / width
	var b strings.Builder
	b.Grow(len(runes))
	for r := 0; r < rows; r++ {
		for k := 0; k < width; k++ {
			c := k
			if r%2 == 1 {
				c = width - 1 - k
			}
			b.WriteRune(runes[c*rows+r])
		}
	}
	return b.String(), nil
}

func (z *ZigZag) padRune() rune {
	if z.rand == nil {
		return rune(alphabet.Alphabet[rand.IntN(alphabet.Size)])
	}
	return rune(alphabet.Alphabet[z.rand.IntN(alphabet.Size)])
}
