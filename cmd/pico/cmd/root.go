package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/rileyq/pico/internal/config"
	"codeberg.org/rileyq/pico/internal/diag"
	"codeberg.org/rileyq/pico/internal/logs"
)

var (
	verbose    bool
	logFile    string
	configFile string
	target     string

	cfg     config.Config
	logger  *slog.Logger
	logDest io.WriteCloser
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pico",
	Short: "Compiler for the pico language",
	Long: `Pico compiles programs written one statement per line into NASM
x86-64 assembly and, with the build command, assembles and links them
into an executable using nasm and ld.

Settings are read from pico.cue in the working directory, or from the
file named by --config.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logs.SetVerbose(verbose)

		var file io.Writer
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			logDest = f
			file = f
		}
		logger = logs.New(cmd.ErrOrStderr(), file)

		var err error
		if configFile != "" {
			cfg, err = config.Load(configFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			return errors.Join(err, closeLog())
		}
		if target != "" {
			cfg.Target = target
		}
		logger.Debug("config", "target", cfg.Target, "assembler", cfg.Assembler, "linker", cfg.Linker)
		return nil
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// closeLog closes the --log-file destination, if one is open.
func closeLog() error {
	if logDest == nil {
		return nil
	}
	err := logDest.Close()
	logDest = nil
	return err
}

// execute runs the command line. Cobra skips the post-run hook when a
// command fails, so the log file is closed here as well.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, closeLog())
}

// Execute runs the command line and exits with status 1 on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx)
	stop()
	if err != nil {
		diag.NewPrinter(os.Stderr).Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Output verbose messages on internal operations")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON log records to this file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Read settings from this cue file instead of "+config.DefaultFile)
	rootCmd.PersistentFlags().StringVar(&target, "target", "", "Target platform: linux-x64 or mac-x64")
}
