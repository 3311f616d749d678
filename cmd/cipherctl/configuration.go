package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Inspect cipherctl configuration",
	Long:  `Inspect cipherctl configuration settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errors.New("command 'configuration' requires a subcommand (show)")
	},
}

func init() {
	rootCmd.AddCommand(configurationCmd)
}
