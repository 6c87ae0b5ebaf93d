package driver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Extension is the file extension of pico source files.
const Extension = ".pico"

var ErrBadExtension = errors.New("source file must have the " + Extension + " extension")

type InputInfo struct {
	SrcPath string
}

type OutputInfo struct {
	AsmPath string
	ObjPath string
	BinPath string
}

type IOInfo struct {
	Input  InputInfo
	Output OutputInfo
}

// NewIOInfo derives the output paths for src. Outputs go next to src unless
// outDir is set.
func NewIOInfo(src, outDir string) (IOInfo, error) {
	if filepath.Ext(src) != Extension {
		return IOInfo{}, fmt.Errorf("%s: %w", src, ErrBadExtension)
	}

	dir, name := filepath.Split(src)
	stem := strings.TrimSuffix(name, Extension)
	if stem == "" {
		return IOInfo{}, fmt.Errorf("%s: missing file name", src)
	}
	if outDir != "" {
		dir = outDir
	}

	base := filepath.Join(dir, stem)
	return IOInfo{
		Input: InputInfo{SrcPath: src},
		Output: OutputInfo{
			AsmPath: base + ".asm",
			ObjPath: base + ".o",
			BinPath: base,
		},
	}, nil
}
