package config

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"codeberg.org/rileyq/pico/internal/compile/codegen"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "pico.cue"

const schemaSrc = `
target?:         "linux-x64" | "mac-x64"
assembler?:      string & != ""
assemblerFlags?: [...string]
linker?:         string & != ""
linkerFlags?:    [...string]
outDir?:         string
`

// Config controls how the driver turns assembly into an executable.
type Config struct {
	Target         string
	Assembler      string
	AssemblerFlags []string
	Linker         string
	LinkerFlags    []string
	OutDir         string
}

func Default() Config {
	return Config{
		Target:    codegen.Default().String(),
		Assembler: "nasm",
		Linker:    "ld",
	}
}

type file struct {
	Target         *string  `json:"target"`
	Assembler      *string  `json:"assembler"`
	AssemblerFlags []string `json:"assemblerFlags"`
	Linker         *string  `json:"linker"`
	LinkerFlags    []string `json:"linkerFlags"`
	OutDir         *string  `json:"outDir"`
}

// Load starts from Default and applies each cue file in order; later files
// override earlier ones field by field.
func Load(paths ...string) (Config, error) {
	cfg := Default()

	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err := schema.Err(); err != nil {
		return cfg, err
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}

		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}

		value = schema.Unify(value)
		if err := value.Validate(cue.Concrete(true)); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}

		var f file
		if err := value.Decode(&f); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		cfg.apply(&f)
	}

	return cfg, nil
}

// LoadDefault loads DefaultFile if it exists and returns Default otherwise.
func LoadDefault() (Config, error) {
	_, err := os.Stat(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(DefaultFile)
}

func (cfg *Config) apply(f *file) {
	if f.Target != nil {
		cfg.Target = *f.Target
	}
	if f.Assembler != nil {
		cfg.Assembler = *f.Assembler
	}
	if f.AssemblerFlags != nil {
		cfg.AssemblerFlags = f.AssemblerFlags
	}
	if f.Linker != nil {
		cfg.Linker = *f.Linker
	}
	if f.LinkerFlags != nil {
		cfg.LinkerFlags = f.LinkerFlags
	}
	if f.OutDir != nil {
		cfg.OutDir = *f.OutDir
	}
}

func (cfg Config) ParseTarget() (codegen.Target, error) {
	return codegen.ParseTarget(cfg.Target)
}
