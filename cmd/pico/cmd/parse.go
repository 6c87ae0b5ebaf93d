package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/rileyq/pico/internal/compile/ast/printer"
	"codeberg.org/rileyq/pico/internal/driver"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse sourceFile",
	Short: "Parse a pico program and print each statement",
	Long: `Parse reads sourceFile, parses every line and prints the statements
back in normalized form, one per line, prefixed by their location.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		stmts, err := driver.ParseReader(f)
		if err != nil {
			return err
		}
		for _, stmt := range stmts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", stmt.Locate(), printer.Sprint(stmt))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
