package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

const document = "# HELLO *WORLD*\n" +
	"\n" +
	"MEET AT `CODE` AND [THE LINK](http://EXAMPLE.COM).\n" +
	"\n" +
	"```\n" +
	"FENCED STAYS\n" +
	"```\n" +
	"\n" +
	"- ITEM ONE\n" +
	"- ITEM <b>TWO</b>\n"

func caesar(mode cipher.Mode) TransformFunc {
	return func(s string) (string, error) {
		return cipher.Transform(mode, cipher.AlgorithmCaesar, s, "")
	}
}

func TestTransform_Caesar(t *testing.T) {
	out, err := Transform([]byte(document), caesar(cipher.ModeEncrypt))
	require.NoError(t, err)

	expected := "# KHOOR *ZRUOG*\n" +
		"\n" +
		"PHHW DW `CODE` DQG [WKH OLQN](http://EXAMPLE.COM).\n" +
		"\n" +
		"```\n" +
		"FENCED STAYS\n" +
		"```\n" +
		"\n" +
		"- LWHP RQH\n" +
		"- LWHP <b>WZR</b>\n"
	assert.Equal(t, expected, string(out))

	back, err := Transform(out, caesar(cipher.ModeDecrypt))
	require.NoError(t, err)
	assert.Equal(t, document, string(back))
}

func TestTransform_RoundTrip(t *testing.T) {
	keys := map[cipher.Algorithm]string{
		cipher.AlgorithmVigenere: "LEMON",
		cipher.AlgorithmWolseley: "MONARCHY",
	}

	for alg, key := range keys {
		t.Run(alg.String(), func(t *testing.T) {
			enc, err := Transform([]byte(document), func(s string) (string, error) {
				return cipher.Transform(cipher.ModeEncrypt, alg, s, key)
			})
			require.NoError(t, err)
			assert.True(t, strings.Contains(string(enc), "`CODE`"))
			assert.True(t, strings.Contains(string(enc), "FENCED STAYS"))

			dec, err := Transform(enc, func(s string) (string, error) {
				return cipher.Transform(cipher.ModeDecrypt, alg, s, key)
			})
			require.NoError(t, err)
			assert.Equal(t, document, string(dec))
		})
	}
}

func TestTransform_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := Transform([]byte("SOME TEXT"), func(string) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTransform_Empty(t *testing.T) {
	out, err := Transform(nil, caesar(cipher.ModeEncrypt))
	require.NoError(t, err)
	assert.Empty(t, out)
}
