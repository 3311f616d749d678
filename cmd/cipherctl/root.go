package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/config"
	"github.com/doodlesbykumbi/ciphers-in-go/pkg/logging"
)

// cfg is loaded before any command runs
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "cipherctl <mode> <text> <algorithm> <key>",
	Short: "Encrypt and decrypt text with classical ciphers",
	Long: `Encrypt and decrypt text with the Caesar, Vigenere, Wolseley and zig-zag
ciphers.

The mode is encrypt or decrypt. Run "cipherctl algorithms" for the key each
algorithm expects.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// Valid modes are subcommands, so anything landing here is unknown.
		mode, err := cipher.ParseMode(args[0])
		if err != nil {
			return err
		}
		return fmt.Errorf("%w %q, did you mean %q?", cipher.ErrUnknownMode, args[0], mode)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error (default from configuration)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (default from configuration)")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		if !slices.Contains(config.ValidLogLevels, level) {
			return fmt.Errorf("invalid --log-level %q", level)
		}
		loaded.LogLevel = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		if !slices.Contains(config.ValidLogFormats, format) {
			return fmt.Errorf("invalid --log-format %q", format)
		}
		loaded.LogFormat = format
	}

	cfg = loaded
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
