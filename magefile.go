//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "bin/membench"
	mainPkg = "./cmd/membench"
)

// Default target - build the binary
var Default = Build

// Build builds the membench binary with version metadata
func Build() error {
	version := envOr("VERSION", "dev")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	ldflags := fmt.Sprintf("-X github.com/tacit7/membench/internal/version.Version=%s -X github.com/tacit7/membench/internal/version.CommitHash=%s",
		version, envOr("COMMIT", commit))
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, mainPkg)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// Run builds and runs the default strings vs symbols comparison
func Run() error {
	mg.Deps(Build)
	return sh.RunV(binary)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet)
}

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Bench runs the Go benchmarks with allocation reporting
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
