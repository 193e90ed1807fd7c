package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.AutoConfirm {
		t.Error("AutoConfirm should default to false")
	}
	if !cfg.Output.Color {
		t.Error("Color should default to true")
	}
	if !cfg.Output.Unicode {
		t.Error("Unicode should default to true")
	}
	if cfg.Output.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.Install.Root != "" {
		t.Error("install root should default to empty (resolved lazily)")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if !cfg.Output.Color {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
auto_confirm = true

[output]
color = false
verbose = true

[install]
root = "/opt/browseros"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if !cfg.General.AutoConfirm {
		t.Error("auto_confirm not applied")
	}
	if cfg.Output.Color {
		t.Error("color override not applied")
	}
	if !cfg.Output.Verbose {
		t.Error("verbose override not applied")
	}
	if cfg.Install.Root != "/opt/browseros" {
		t.Errorf("install root = %s, want /opt/browseros", cfg.Install.Root)
	}
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom(invalid) = nil, want error")
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := Default()

	t.Setenv("NO_COLOR", "")
	if !cfg.ShouldUseColor() {
		t.Error("color should be on by default")
	}

	t.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("NO_COLOR should disable color")
	}
}

func TestResolveInstallRoot(t *testing.T) {
	cfg := Default()

	root := cfg.ResolveInstallRoot()
	if !strings.HasSuffix(root, rootDirName) {
		t.Errorf("default root = %s, want a %s directory", root, rootDirName)
	}

	cfg.Install.Root = "/custom/root"
	if got := cfg.ResolveInstallRoot(); got != "/custom/root" {
		t.Errorf("root = %s, want /custom/root", got)
	}
}
