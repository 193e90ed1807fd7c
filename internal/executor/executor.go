// Package executor handles invocation of the external tools agent-browser drives.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Runner is the capability every component uses to reach external executables.
// Implementations report only arguments in and exit status out; tests substitute
// fakes so no real subprocess runs.
type Runner interface {
	// Run executes a command, streaming its output to the terminal.
	Run(ctx context.Context, name string, args ...string) error

	// RunQuiet executes a command with both output streams discarded.
	RunQuiet(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Shell runs a full command line through the system shell.
	Shell(ctx context.Context, command string) error

	// LookPath reports whether an executable exists on the search path.
	// Absence is a normal outcome, never an error.
	LookPath(name string) bool
}

// Exec is the production Runner backed by os/exec.
type Exec struct {
	verbose bool
}

// New creates a new Exec runner.
func New(verbose bool) *Exec {
	return &Exec{verbose: verbose}
}

// Run executes a command, streaming output to the terminal.
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// RunQuiet executes a command with stdout and stderr discarded.
func (e *Exec) RunQuiet(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	return cmd.Run()
}

// Output runs a command and returns its stdout.
func (e *Exec) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if e.verbose {
		fmt.Printf("Executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	return stdout.String(), err
}

// Shell runs a command line through sh -c, or PowerShell on Windows.
func (e *Exec) Shell(ctx context.Context, command string) error {
	if runtime.GOOS == "windows" {
		return e.Run(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", command)
	}
	return e.Run(ctx, "sh", "-c", command)
}

// LookPath reports whether an executable exists on the search path.
func (e *Exec) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ExitStatus extracts the subprocess exit status from an error returned by a
// Runner. It returns -1 when the error carries no exit status (the tool could
// not be started at all).
func ExitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
