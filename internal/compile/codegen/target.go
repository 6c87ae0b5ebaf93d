package codegen

import (
	"fmt"
	"runtime"
)

type Target int

const (
	LinuxX64 Target = iota
	MacX64
)

var targetNames = []string{"linux-x64", "mac-x64"}

func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return targetNames[t]
}

func ParseTarget(name string) (Target, error) {
	for i, n := range targetNames {
		if n == name {
			return Target(i), nil
		}
	}
	return 0, fmt.Errorf("unknown target %q", name)
}

// Default is the target matching the host. Hosts without a matching target
// get LinuxX64.
func Default() Target {
	if runtime.GOOS == "darwin" && runtime.GOARCH == "amd64" {
		return MacX64
	}
	return LinuxX64
}

// Format is the nasm output format for objects of this target.
func (t Target) Format() string {
	if t == MacX64 {
		return "macho64"
	}
	return "elf64"
}

func (t Target) sysWrite() string {
	if t == MacX64 {
		return "0x2000004"
	}
	return "1"
}

func (t Target) sysExit() string {
	if t == MacX64 {
		return "0x2000001"
	}
	return "60"
}
