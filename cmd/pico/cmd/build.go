package cmd

import (
	"github.com/spf13/cobra"

	"codeberg.org/rileyq/pico/internal/driver"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build sourceFile",
	Short: "Compile, assemble and link a pico program",
	Long: `Build compiles sourceFile to assembly, runs the assembler to produce
an object file and runs the linker to produce an executable. For
hello.pico the outputs are hello.asm, hello.o and hello, written next
to the source unless outDir is configured.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := driver.NewIOInfo(args[0], cfg.OutDir)
		if err != nil {
			return err
		}
		err = driver.New(cfg, logger).Build(cmd.Context(), info)
		if err != nil {
			return err
		}
		logger.Info("built", "bin", info.Output.BinPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
