// Package sysdeps installs the shared libraries BrowserOS needs at runtime.
//
// Resolution probes the host's package managers in a fixed priority order
// (apt-get, then dnf, then yum) and stops at the first one found. The probe
// runs once per invocation; missing shared libraries only affect the browser
// at runtime, so a failed install is a warning for the caller, never a reason
// to abandon the download and unpack steps.
package sysdeps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agentbrowser/internal/executor"
)

// ErrNoPackageManager is returned when none of the supported package managers
// exist on the host.
var ErrNoPackageManager = errors.New("no supported package manager found (apt-get, dnf, or yum)")

// Profile is the selected package manager and the packages to install with it.
type Profile struct {
	Manager  string
	Packages []string
}

// The audio library was renamed on newer Debian/Ubuntu releases. Resolution
// substitutes the new name when the package index knows it.
const (
	libasoundLegacy = "libasound2"
	libasoundT64    = "libasound2t64"
)

var aptPackages = []string{
	"libxcb-shm0",
	"libx11-xcb1",
	"libx11-6",
	"libxcb1",
	"libxext6",
	"libxrandr2",
	"libxcomposite1",
	"libxcursor1",
	"libxdamage1",
	"libxfixes3",
	"libxi6",
	"libgtk-3-0",
	"libpangocairo-1.0-0",
	"libpango-1.0-0",
	"libatk1.0-0",
	"libcairo-gobject2",
	"libcairo2",
	"libgdk-pixbuf-2.0-0",
	"libxrender1",
	libasoundLegacy,
	"libfreetype6",
	"libfontconfig1",
	"libdbus-1-3",
	"libnss3",
	"libnspr4",
	"libatk-bridge2.0-0",
	"libdrm2",
	"libxkbcommon0",
	"libatspi2.0-0",
	"libcups2",
	"libxshmfence1",
	"libgbm1",
}

var dnfPackages = []string{
	"nss",
	"nspr",
	"atk",
	"at-spi2-atk",
	"cups-libs",
	"libdrm",
	"libXcomposite",
	"libXdamage",
	"libXrandr",
	"mesa-libgbm",
	"pango",
	"alsa-lib",
	"libxkbcommon",
	"libxcb",
	"libX11-xcb",
	"libX11",
	"libXext",
	"libXcursor",
	"libXfixes",
	"libXi",
	"gtk3",
	"cairo-gobject",
}

var yumPackages = []string{
	"nss",
	"nspr",
	"atk",
	"at-spi2-atk",
	"cups-libs",
	"libdrm",
	"libXcomposite",
	"libXdamage",
	"libXrandr",
	"mesa-libgbm",
	"pango",
	"alsa-lib",
	"libxkbcommon",
}

// Resolve selects the host's package manager and the package list to install.
// The first available manager wins; no further probing happens after a match.
// It performs no installation itself.
func Resolve(ctx context.Context, runner executor.Runner) (*Profile, error) {
	switch {
	case runner.LookPath("apt-get"):
		packages := make([]string, len(aptPackages))
		copy(packages, aptPackages)
		if aptPackageExists(ctx, runner, libasoundT64) {
			for i, pkg := range packages {
				if pkg == libasoundLegacy {
					packages[i] = libasoundT64
				}
			}
		}
		return &Profile{Manager: "apt-get", Packages: packages}, nil
	case runner.LookPath("dnf"):
		return &Profile{Manager: "dnf", Packages: dnfPackages}, nil
	case runner.LookPath("yum"):
		return &Profile{Manager: "yum", Packages: yumPackages}, nil
	}
	return nil, ErrNoPackageManager
}

// aptPackageExists queries the apt package index for a package name.
func aptPackageExists(ctx context.Context, runner executor.Runner, pkg string) bool {
	return runner.RunQuiet(ctx, "apt-cache", "show", pkg) == nil
}

// InstallCommand returns the shell command line that installs the profile's
// packages. apt-get refreshes the package index first; dnf and yum do not
// need it.
func (p *Profile) InstallCommand() string {
	packages := strings.Join(p.Packages, " ")
	if p.Manager == "apt-get" {
		return fmt.Sprintf("sudo apt-get update && sudo apt-get install -y %s", packages)
	}
	return fmt.Sprintf("sudo %s install -y %s", p.Manager, packages)
}

// Install runs the install command through the system shell.
func (p *Profile) Install(ctx context.Context, runner executor.Runner) error {
	return runner.Shell(ctx, p.InstallCommand())
}
