// Package installer turns a downloaded BrowserOS artifact into a runnable
// executable. Each operating system gets its own variant, selected once at
// runtime so the full decision table stays visible on any host.
package installer

import (
	"context"
	"io"
	"os"

	"agentbrowser/internal/executor"
	"agentbrowser/pkg/platform"
)

const (
	// BundleName is the application bundle shipped inside the macOS disk image.
	BundleName = "BrowserOS.app"

	// ExecutableName is the browser binary name on every platform.
	ExecutableName = "BrowserOS"
)

// Installer performs the OS-specific unpack and install sequence.
type Installer interface {
	// Install unpacks the artifact into the install root and returns the
	// path to the runnable executable.
	Install(ctx context.Context, artifactPath string) (string, error)
}

// For returns the installer variant for an operating system. The second
// return is false when the OS has no automated install step and the caller
// must direct the user to manual follow-up instead.
func For(os platform.OSType, root string, runner executor.Runner) (Installer, bool) {
	switch os {
	case platform.OSDarwin:
		return &DiskImageInstaller{Root: root, Runner: runner}, true
	case platform.OSLinux:
		return &AppImageInstaller{Root: root, Runner: runner}, true
	}
	return nil, false
}

// copyFile copies a file from src to dst, preserving the source mode.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
