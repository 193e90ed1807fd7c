package executor

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	e := New(false)
	if e == nil {
		t.Fatal("New() returned nil")
	}
}

func TestOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires echo")
	}

	e := New(false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := e.Output(ctx, "echo", "hello")
	if err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("Output() = %q, want to contain 'hello'", output)
	}
}

func TestRunQuietFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	e := New(false)
	err := e.RunQuiet(context.Background(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("RunQuiet() = nil, want error")
	}
	if code := ExitStatus(err); code != 3 {
		t.Errorf("ExitStatus() = %d, want 3", code)
	}
}

func TestShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	e := New(false)
	if err := e.Shell(context.Background(), "true"); err != nil {
		t.Errorf("Shell(true) error: %v", err)
	}
	if err := e.Shell(context.Background(), "false"); err == nil {
		t.Error("Shell(false) = nil, want error")
	}
}

func TestLookPath(t *testing.T) {
	e := New(false)

	// The Go toolchain's own binary name is as close to universally
	// present as a test can assume.
	if runtime.GOOS != "windows" && !e.LookPath("sh") {
		t.Error("LookPath(sh) = false on a unix host")
	}
	if e.LookPath("definitely-not-a-real-tool-xyz") {
		t.Error("LookPath() = true for a nonexistent tool")
	}
}

func TestExitStatus(t *testing.T) {
	if code := ExitStatus(errors.New("plain error")); code != -1 {
		t.Errorf("ExitStatus(plain error) = %d, want -1", code)
	}
	if code := ExitStatus(nil); code != -1 {
		t.Errorf("ExitStatus(nil) = %d, want -1", code)
	}

	if runtime.GOOS != "windows" {
		err := exec.Command("sh", "-c", "exit 9").Run()
		if code := ExitStatus(err); code != 9 {
			t.Errorf("ExitStatus() = %d, want 9", code)
		}
	}
}
