package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"agentbrowser/internal/config"
	"agentbrowser/internal/executor"
)

// DiskImageInstaller installs BrowserOS from a macOS disk image: mount the
// image at a staging directory under the install root, copy the application
// bundle out, unmount. The staging directory must never survive the call,
// whatever the outcome.
type DiskImageInstaller struct {
	Root   string
	Runner executor.Runner
}

// Install mounts the disk image and copies the bundle into the install root.
func (d *DiskImageInstaller) Install(ctx context.Context, dmgPath string) (string, error) {
	mountDir := config.MountDir(d.Root)
	target := filepath.Join(d.Root, BundleName)

	if err := os.MkdirAll(d.Root, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare install directory %s: %w", d.Root, err)
	}

	// A previous run that crashed mid-install may have left the staging
	// directory mounted. The detach may fail if it already cleaned up.
	if _, err := os.Stat(mountDir); err == nil {
		_ = d.Runner.RunQuiet(ctx, "hdiutil", "detach", mountDir, "-force") //nolint:errcheck
		_ = os.RemoveAll(mountDir)                                          //nolint:errcheck
	}
	if err := os.MkdirAll(mountDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create mount directory %s: %w", mountDir, err)
	}

	if err := d.Runner.RunQuiet(ctx, "hdiutil", "attach", "-nobrowse", "-quiet", "-mountpoint", mountDir, dmgPath); err != nil {
		_ = os.RemoveAll(mountDir) //nolint:errcheck
		return "", fmt.Errorf("failed to mount BrowserOS disk image %s: %w", dmgPath, err)
	}

	// Unmount and drop the staging directory on every exit path below.
	defer func() {
		_ = d.Runner.RunQuiet(ctx, "hdiutil", "detach", mountDir, "-quiet") //nolint:errcheck
		_ = os.RemoveAll(mountDir)                                          //nolint:errcheck
	}()

	bundleInImage := filepath.Join(mountDir, BundleName)
	if _, err := os.Stat(bundleInImage); err != nil {
		return "", fmt.Errorf("%s not found in mounted disk image: %s", BundleName, mountDir)
	}

	if _, err := os.Stat(target); err == nil {
		if err := os.RemoveAll(target); err != nil {
			return "", fmt.Errorf("failed to remove previous %s at %s: %w", BundleName, target, err)
		}
	}

	if err := d.Runner.RunQuiet(ctx, "cp", "-R", bundleInImage, target); err != nil {
		return "", fmt.Errorf("failed to copy %s from disk image: %w", BundleName, err)
	}

	executable := filepath.Join(target, "Contents", "MacOS", ExecutableName)
	if _, err := os.Stat(executable); err != nil {
		return "", fmt.Errorf("installed BrowserOS executable not found: %s", executable)
	}

	return executable, nil
}
