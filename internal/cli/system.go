package cli

import (
	"agentbrowser/internal/ui"
	"agentbrowser/pkg/release"

	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show detected platform information",
	Long: `Display the detected operating system, architecture, and the
BrowserOS release artifact that would be installed here.

Examples:
  agent-browser system               # Show platform info`,
	RunE: runSystem,
}

func runSystem(cmd *cobra.Command, args []string) error {
	ui.HeaderMsg("Platform")
	ui.InfoMsg("OS: %s", host.RawOS)
	ui.InfoMsg("Architecture: %s", host.Arch)
	if host.IsLinux() && host.Distro != "" {
		distro := host.Distro
		if host.Ver != "" {
			distro += " " + host.Ver
		}
		ui.InfoMsg("Distribution: %s", distro)
		if host.Family != "" {
			ui.MutedMsg("  Family: %s", host.Family)
		}
	}

	ui.HeaderMsg("Install target")
	ui.InfoMsg("Install root: %s", cfg.ResolveInstallRoot())

	artifact, ok := release.Resolve(host.OS, host.Arch)
	if !ok {
		ui.WarningMsg("No BrowserOS %s artifact is published for %s / %s", release.Version, host.RawOS, host.Arch)
		return nil
	}

	ui.InfoMsg("BrowserOS release: %s", release.Version)
	ui.MutedMsg("  Artifact: %s", artifact.FileName)
	ui.MutedMsg("  URL:      %s", artifact.URL)

	return nil
}
