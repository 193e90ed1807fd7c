package config

import (
	"path/filepath"
	"testing"
)

func TestInstallRootSubdirs(t *testing.T) {
	root := filepath.Join("home", "user", rootDirName)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"downloads", DownloadsDir(root), filepath.Join(root, "downloads")},
		{"mount", MountDir(root), filepath.Join(root, "mount")},
		{"bin", BinDir(root), filepath.Join(root, "bin")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestDefaultInstallRoot(t *testing.T) {
	root := DefaultInstallRoot()
	if root == "" {
		t.Fatal("DefaultInstallRoot() returned empty path")
	}
	if filepath.Base(root) != rootDirName {
		t.Errorf("root = %s, want a %s directory", root, rootDirName)
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if filepath.Base(path) != configFile {
		t.Errorf("ConfigPath() = %s, want it to end in %s", path, configFile)
	}
}
