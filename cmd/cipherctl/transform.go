package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/markup"
)

var (
	encryptCmd = newTransformCmd(cipher.ModeEncrypt)
	decryptCmd = newTransformCmd(cipher.ModeDecrypt)

	// cipherOptions is passed to every cipher the CLI builds
	cipherOptions []cipher.Option
)

func init() {
	rootCmd.AddCommand(encryptCmd, decryptCmd)
}

var modeTitles = map[cipher.Mode]string{
	cipher.ModeEncrypt: "Encrypt",
	cipher.ModeDecrypt: "Decrypt",
}

func newTransformCmd(mode cipher.Mode) *cobra.Command {
	title := modeTitles[mode]
	cmd := &cobra.Command{
		Use:   mode.String() + " <text> <algorithm> <key>",
		Short: title + " text with a classical cipher",
		Long: fmt.Sprintf(`%s text with one of the supported algorithms and print the result.

The text is taken literally, not as a file path. Caesar ignores its key but
one must still be given.

Example:
  cipherctl %s "HELLO" vigenere KEY
  cipherctl %s --normalize "hello" wolseley monarchy`, title, mode, mode),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := cipher.ParseAlgorithm(args[1])
			if err != nil {
				return err
			}

			normalize, _ := cmd.Flags().GetBool("normalize")
			markdown, _ := cmd.Flags().GetBool("markdown")

			out, err := transformText(mode, alg, args[0], args[2], normalize || cfg.Normalize, markdown)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Bool("normalize", false, "uppercase text and key before transforming")
	cmd.Flags().Bool("markdown", false, "treat text as markdown and transform prose only (substitution ciphers)")
	return cmd
}

// transformText runs one CLI transform.
func transformText(mode cipher.Mode, alg cipher.Algorithm, text, key string, normalize, markdown bool) (string, error) {
	if normalize {
		text, key = strings.ToUpper(text), strings.ToUpper(key)
	}

	c, err := cipher.New(alg, cipherOptions...)
	if err != nil {
		return "", err
	}

	if markdown {
		if !alg.Substitution() {
			return "", fmt.Errorf("--markdown needs a substitution cipher, %s rearranges text", alg)
		}
		out, err := markup.Transform([]byte(text), func(s string) (string, error) {
			return cipher.Apply(c, mode, s, key)
		})
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	if z, ok := c.(*cipher.ZigZag); ok && mode == cipher.ModeEncrypt {
		out, padding, err := z.EncryptWithPadding(text, key)
		if err != nil {
			return "", err
		}
		if padding > 0 {
			slog.Warn("zigzag output padded with random letters, decryption will keep them", "runes", padding)
		}
		return out, nil
	}

	slog.Debug("transforming", "mode", mode, "algorithm", alg, "runes", len([]rune(text)))
	return cipher.Apply(c, mode, text, key)
}
