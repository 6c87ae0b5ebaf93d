package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/rileyq/pico/internal/compile/scanner"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens sourceFile",
	Short: "Print the tokens of a pico program",

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		lines, err := scanner.Lines(f)
		if err != nil {
			return err
		}
		for _, line := range lines {
			for _, tok := range line {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
