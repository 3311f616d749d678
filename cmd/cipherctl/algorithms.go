package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/ciphers-in-go/pkg/cipher"
)

// algorithmsCmd represents the algorithms command
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the supported algorithms and their keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ALGORITHM\tKIND\tKEY\tSERVER")
		for _, alg := range cipher.AlgorithmValues() {
			kind := "transposition"
			if alg.Substitution() {
				kind = "substitution"
			}
			server := "disabled"
			if cfg.IsAlgorithmEnabled(alg) {
				server = "enabled"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", alg, kind, alg.KeyDescription(), server)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
