//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"fmt": Lint.Fmt,
	"smk": Smoke,
}

type (
	Test st.Namespace
	Lint st.Namespace
	CI   st.Namespace
)

// fuzzTargets lists every fuzz function with the package that holds it.
var fuzzTargets = []struct{ pkg, name string }{
	{"./pkg/block", "FuzzClassify"},
	{"./pkg/table", "FuzzFromMarkdown"},
	{"./pkg/trigger", "FuzzProcess"},
}

// Build compiles bin/gomdedit with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir("bin/gomdedit", "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/gomdedit is up to date")
		return nil
	}
	fmt.Println("Building gomdedit...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/gomdedit", "./cmd/gomdedit")
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs gomdedit to $GOBIN or $GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/gomdedit")
}

// Smoke builds the binary and runs the goldmark comparison and table
// normalization over the repository's own Markdown files.
func Smoke() error {
	st.Deps(Build)
	if err := sh.RunV("bin/gomdedit", "check", "--format", "summary", "."); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	return sh.RunV("bin/gomdedit", "table", "fmt", "--format", "diff", ".")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Fuzz runs each fuzz target for FUZZTIME (default 30s).
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZTIME"), "30s")
	for _, ft := range fuzzTargets {
		fmt.Printf("Fuzzing %s in %s for %s...\n", ft.name, ft.pkg, fuzzTime)
		if err := sh.RunV("go", "test", ft.pkg, "-run", "^$", "-fuzz", "^"+ft.name+"$", "-fuzztime", fuzzTime); err != nil {
			return fmt.Errorf("%s: %w", ft.name, err)
		}
	}
	return nil
}

// Golden rewrites the classifier golden files from pkg/block/testdata.
func (Test) Golden() error {
	return sh.RunV("go", "test", "./pkg/block", "-run", "TestClassify_Golden", "-update")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when any file needs gofmt.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Gate runs the checks CI requires before merge.
func (CI) Gate() {
	st.SerialDeps(Lint.FmtCheck, Build, Test.Default, CI.ModTidy)
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	return sh.RunV("go", "mod", "tidy", "-diff")
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}
