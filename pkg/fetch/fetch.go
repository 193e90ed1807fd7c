// Package fetch retrieves release artifacts with whichever download tool the
// host provides. The transport itself belongs to the external tool; this
// package only decides what to invoke and interprets the exit status.
package fetch

import (
	"context"
	"errors"
	"fmt"

	"agentbrowser/internal/executor"
	"agentbrowser/pkg/platform"
)

// ErrNoFetchTool is returned when no usable download tool exists on the host.
// This is a hard stop: there is nothing to degrade to.
var ErrNoFetchTool = errors.New("neither curl nor wget is available in PATH")

// Download fetches url to dest. On Windows it uses a PowerShell web request;
// elsewhere it prefers curl (with bounded retry) and falls back to wget.
// Success is defined solely by the tool's exit status; no integrity check of
// the downloaded file happens here.
func Download(ctx context.Context, runner executor.Runner, os platform.OSType, url, dest string) error {
	if os == platform.OSWindows {
		script := fmt.Sprintf(
			"$ProgressPreference='SilentlyContinue'; Invoke-WebRequest -Uri '%s' -OutFile '%s'",
			url, dest,
		)
		if err := runner.Run(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script); err != nil {
			return downloadError(url, err)
		}
		return nil
	}

	switch {
	case runner.LookPath("curl"):
		if err := runner.Run(ctx, "curl", "-fL", "--retry", "3", "-o", dest, url); err != nil {
			return downloadError(url, err)
		}
	case runner.LookPath("wget"):
		if err := runner.Run(ctx, "wget", "-O", dest, url); err != nil {
			return downloadError(url, err)
		}
	default:
		return ErrNoFetchTool
	}

	return nil
}

func downloadError(url string, err error) error {
	if code := executor.ExitStatus(err); code >= 0 {
		return fmt.Errorf("download failed for %s (exit status: %d)", url, code)
	}
	return fmt.Errorf("download failed for %s: %w", url, err)
}
