package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"codeberg.org/rileyq/pico/internal/compile/codegen"
	"codeberg.org/rileyq/pico/internal/config"
)

var ErrToolNotFound = errors.New("tool not found")

// ToolError reports an assembler or linker that ran and failed.
type ToolError struct {
	Tool     string
	ExitCode int
}

func (err *ToolError) Error() string {
	return fmt.Sprintf("Error occurs while executing `%s` (exit status %d)", err.Tool, err.ExitCode)
}

type Driver struct {
	Config config.Config
	Logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Driver {
	return &Driver{Config: cfg, Logger: logger}
}

// Emit compiles the source named by info and writes the assembly file.
func (d *Driver) Emit(info IOInfo) error {
	target, err := d.Config.ParseTarget()
	if err != nil {
		return err
	}
	return d.emit(info, target)
}

func (d *Driver) emit(info IOInfo, target codegen.Target) error {
	d.Logger.Debug("compile", "src", info.Input.SrcPath, "target", target)

	content, err := os.ReadFile(info.Input.SrcPath)
	if err != nil {
		return fmt.Errorf("Failed to read the source file: %w", err)
	}

	out, err := Compile(string(content), target)
	if err != nil {
		return err
	}

	d.Logger.Debug("write", "asm", info.Output.AsmPath)
	return os.WriteFile(info.Output.AsmPath, []byte(out), 0o644)
}

// Build compiles, assembles and links the source named by info.
func (d *Driver) Build(ctx context.Context, info IOInfo) error {
	target, err := d.Config.ParseTarget()
	if err != nil {
		return err
	}

	err = d.emit(info, target)
	if err != nil {
		return err
	}

	args := []string{"-f", target.Format()}
	args = append(args, d.Config.AssemblerFlags...)
	args = append(args, info.Output.AsmPath, "-o", info.Output.ObjPath)
	err = d.run(ctx, d.Config.Assembler, args...)
	if err != nil {
		return err
	}

	args = []string{"-o", info.Output.BinPath, info.Output.ObjPath}
	args = append(args, d.Config.LinkerFlags...)
	return d.run(ctx, d.Config.Linker, args...)
}

func (d *Driver) run(ctx context.Context, tool string, args ...string) error {
	d.Logger.Debug("exec", "tool", tool, "args", args)

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Tool: tool, ExitCode: exitErr.ExitCode()}
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: Unable to find `%s`, perhaps install it and set PATH: %w", ErrToolNotFound, tool, err)
	}
	return fmt.Errorf("%s: %w", tool, err)
}
