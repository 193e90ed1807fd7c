// Package platform detects the host operating system and CPU architecture.
package platform

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// OSType represents the detected operating system class.
type OSType string

const (
	OSLinux   OSType = "linux"
	OSDarwin  OSType = "darwin"
	OSWindows OSType = "windows"
	OSUnknown OSType = "unknown"
)

// Info contains information about the detected host. It is read once at
// process start and never changes during a run.
type Info struct {
	OS     OSType
	RawOS  string // runtime.GOOS, kept for diagnostics on unknown systems
	Arch   string // runtime.GOARCH
	Distro string // Linux distribution ID (e.g. "ubuntu"), empty elsewhere
	Family string // Linux distribution family (e.g. "debian")
	Ver    string // Linux distribution version
}

// Detect detects the current host's OS and architecture. On Linux it also
// queries the distribution details; failures there degrade gracefully to
// OS/arch only since nothing downstream requires the distro name.
func Detect(ctx context.Context) *Info {
	info := &Info{
		RawOS: runtime.GOOS,
		Arch:  runtime.GOARCH,
	}

	switch runtime.GOOS {
	case "linux":
		info.OS = OSLinux
		if platform, family, version, err := host.PlatformInformationWithContext(ctx); err == nil {
			info.Distro = platform
			info.Family = family
			info.Ver = version
		}
	case "darwin":
		info.OS = OSDarwin
	case "windows":
		info.OS = OSWindows
	default:
		info.OS = OSUnknown
	}

	return info
}

// IsLinux returns true if the host is running Linux.
func (i *Info) IsLinux() bool {
	return i.OS == OSLinux
}

// IsDarwin returns true if the host is running macOS.
func (i *Info) IsDarwin() bool {
	return i.OS == OSDarwin
}

// IsWindows returns true if the host is running Windows.
func (i *Info) IsWindows() bool {
	return i.OS == OSWindows
}
