package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName     = "agent-browser"
	rootDirName = ".browseros"
	configFile  = "config.toml"
)

// ConfigDir returns the platform-specific configuration directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir() //nolint:errcheck
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default: // linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, _ := os.UserHomeDir() //nolint:errcheck
		return filepath.Join(home, ".config", appName)
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFile)
}

// DefaultInstallRoot returns the directory tree the installer owns: a dot
// directory under the user's home, or a temp location when no home exists.
func DefaultInstallRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), rootDirName)
	}
	return filepath.Join(home, rootDirName)
}

// DownloadsDir returns the downloads subdirectory of an install root.
func DownloadsDir(root string) string {
	return filepath.Join(root, "downloads")
}

// MountDir returns the transient disk-image staging directory of an install root.
func MountDir(root string) string {
	return filepath.Join(root, "mount")
}

// BinDir returns the installed-binaries subdirectory of an install root.
func BinDir(root string) string {
	return filepath.Join(root, "bin")
}
