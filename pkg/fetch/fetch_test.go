package fetch

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"agentbrowser/pkg/platform"
)

type fakeRunner struct {
	available map[string]bool
	runs      [][]string
	runErr    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.runs = append(f.runs, append([]string{name}, args...))
	return f.runErr
}

func (f *fakeRunner) RunQuiet(ctx context.Context, name string, args ...string) error {
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return "", nil
}

func (f *fakeRunner) Shell(ctx context.Context, command string) error {
	return nil
}

func (f *fakeRunner) LookPath(name string) bool {
	return f.available[name]
}

const testURL = "http://cdn.browseros.com/releases/0.39.0.3/linux/BrowserOS_v0.39.0.3_x64.AppImage"

func TestDownloadPrefersCurl(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{"curl": true, "wget": true}}

	err := Download(context.Background(), runner, platform.OSLinux, testURL, "/tmp/out")
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}

	if len(runner.runs) != 1 {
		t.Fatalf("runs = %v, want one invocation", runner.runs)
	}
	want := []string{"curl", "-fL", "--retry", "3", "-o", "/tmp/out", testURL}
	got := runner.runs[0]
	if len(got) != len(want) {
		t.Fatalf("curl args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDownloadFallsBackToWget(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{"wget": true}}

	if err := Download(context.Background(), runner, platform.OSLinux, testURL, "/tmp/out"); err != nil {
		t.Fatalf("Download() error: %v", err)
	}

	if len(runner.runs) != 1 || runner.runs[0][0] != "wget" {
		t.Fatalf("runs = %v, want wget invocation", runner.runs)
	}
}

func TestDownloadNoFetchTool(t *testing.T) {
	runner := &fakeRunner{available: map[string]bool{}}

	err := Download(context.Background(), runner, platform.OSLinux, testURL, "/tmp/out")
	if !errors.Is(err, ErrNoFetchTool) {
		t.Fatalf("Download() error = %v, want ErrNoFetchTool", err)
	}
	if len(runner.runs) != 0 {
		t.Errorf("runs = %v, want none", runner.runs)
	}
}

func TestDownloadWindowsUsesPowerShell(t *testing.T) {
	runner := &fakeRunner{}

	if err := Download(context.Background(), runner, platform.OSWindows, testURL, `C:\dl\out.exe`); err != nil {
		t.Fatalf("Download() error: %v", err)
	}

	if len(runner.runs) != 1 || runner.runs[0][0] != "powershell" {
		t.Fatalf("runs = %v, want powershell invocation", runner.runs)
	}
	script := runner.runs[0][len(runner.runs[0])-1]
	if !strings.Contains(script, testURL) || !strings.Contains(script, `C:\dl\out.exe`) {
		t.Errorf("script %q missing URL or destination", script)
	}
}

func TestDownloadFailureNamesURLAndExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	// A real exit error so the status code can be extracted.
	exitErr := exec.Command("sh", "-c", "exit 7").Run()
	if exitErr == nil {
		t.Fatal("expected failing command")
	}

	runner := &fakeRunner{
		available: map[string]bool{"curl": true},
		runErr:    exitErr,
	}

	err := Download(context.Background(), runner, platform.OSLinux, testURL, "/tmp/out")
	if err == nil {
		t.Fatal("Download() = nil, want error")
	}
	if !strings.Contains(err.Error(), testURL) {
		t.Errorf("error %q does not name the URL", err)
	}
	if !strings.Contains(err.Error(), "exit status: 7") {
		t.Errorf("error %q does not name the exit status", err)
	}
}

func TestDownloadFailureWithoutExitStatus(t *testing.T) {
	runner := &fakeRunner{
		available: map[string]bool{"curl": true},
		runErr:    errors.New("could not start"),
	}

	err := Download(context.Background(), runner, platform.OSLinux, testURL, "/tmp/out")
	if err == nil {
		t.Fatal("Download() = nil, want error")
	}
	if !strings.Contains(err.Error(), testURL) {
		t.Errorf("error %q does not name the URL", err)
	}
}
