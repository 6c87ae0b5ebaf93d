package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/rileyq/pico/internal/driver"
)

var emitToFile bool

// emitCmd represents the emit command
var emitCmd = &cobra.Command{
	Use:   "emit sourceFile",
	Short: "Compile a pico program to NASM assembly",
	Long: `Emit compiles sourceFile and prints the generated assembly. With
--write the assembly is written to the .asm file build would use instead.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := driver.NewIOInfo(args[0], cfg.OutDir)
		if err != nil {
			return err
		}
		d := driver.New(cfg, logger)
		if emitToFile {
			return d.Emit(info)
		}

		target, err := cfg.ParseTarget()
		if err != nil {
			return err
		}
		content, err := os.ReadFile(info.Input.SrcPath)
		if err != nil {
			return err
		}
		out, err := driver.Compile(string(content), target)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	emitCmd.Flags().BoolVar(&emitToFile, "write", false, "Write the .asm file instead of printing it")
	rootCmd.AddCommand(emitCmd)
}
