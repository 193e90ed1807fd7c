package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"agentbrowser/internal/config"
	"agentbrowser/internal/executor"
)

// AppImageInstaller installs BrowserOS on Linux: the downloaded AppImage is
// itself the executable, so install is copy plus an executable bit.
type AppImageInstaller struct {
	Root   string
	Runner executor.Runner
}

// Install copies the AppImage into the install root's bin directory and
// marks it executable. Any previous copy is overwritten.
func (a *AppImageInstaller) Install(ctx context.Context, appImagePath string) (string, error) {
	binDir := config.BinDir(a.Root)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create bin directory %s: %w", binDir, err)
	}

	executable := filepath.Join(binDir, ExecutableName)
	if err := copyFile(appImagePath, executable); err != nil {
		return "", fmt.Errorf("failed to install BrowserOS AppImage to %s: %w", executable, err)
	}

	if err := a.Runner.RunQuiet(ctx, "chmod", "+x", executable); err != nil {
		return "", fmt.Errorf("failed to mark %s as executable: %w", executable, err)
	}

	return executable, nil
}
