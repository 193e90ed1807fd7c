// Package release maps a host platform to the BrowserOS artifact to install.
package release

import (
	"fmt"

	"agentbrowser/pkg/platform"
)

// Version is the pinned BrowserOS release this build of agent-browser installs.
// Bumping it is a one-line change; every URL and file name derives from it.
const Version = "0.39.0.3"

const cdnBase = "http://cdn.browseros.com/releases"

// Artifact describes one downloadable release package.
type Artifact struct {
	URL      string
	FileName string
}

// Resolve selects the artifact for the host platform at the pinned version.
// It returns false when the OS has no published artifact at all; macOS always
// resolves (unknown architectures fall back to the universal binary).
func Resolve(os platform.OSType, arch string) (*Artifact, bool) {
	return ResolveVersion(os, arch, Version)
}

// ResolveVersion selects the artifact for a platform at an explicit version.
// The mapping is a pure function: no network call, byte-identical results for
// identical inputs.
func ResolveVersion(os platform.OSType, arch, version string) (*Artifact, bool) {
	switch os {
	case platform.OSDarwin:
		switch arch {
		case "arm64":
			return macArtifact(version, "arm64"), true
		case "amd64":
			return macArtifact(version, "x64"), true
		default:
			return macArtifact(version, "universal"), true
		}
	case platform.OSWindows:
		name := fmt.Sprintf("BrowserOS_v%s_x64_installer.exe", version)
		return &Artifact{
			URL:      fmt.Sprintf("%s/%s/win/%s", cdnBase, version, name),
			FileName: name,
		}, true
	case platform.OSLinux:
		name := fmt.Sprintf("BrowserOS_v%s_x64.AppImage", version)
		return &Artifact{
			URL:      fmt.Sprintf("%s/%s/linux/%s", cdnBase, version, name),
			FileName: name,
		}, true
	}
	return nil, false
}

func macArtifact(version, variant string) *Artifact {
	name := fmt.Sprintf("BrowserOS_v%s_%s.dmg", version, variant)
	return &Artifact{
		URL:      fmt.Sprintf("%s/%s/macos/%s", cdnBase, version, name),
		FileName: name,
	}
}
