package cli

import (
	"agentbrowser/internal/ui"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the external tools the installer relies on",
	Long: `Probe every external tool the install pipeline may invoke on this
platform and report which are available.

Examples:
  agent-browser doctor               # Run diagnostics`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	issues := 0

	ui.HeaderMsg("Download tools")
	if host.IsWindows() {
		checkTool("powershell", &issues)
	} else {
		curl := runner.LookPath("curl")
		wget := runner.LookPath("wget")
		reportTool("curl", curl)
		reportTool("wget", wget)
		if !curl && !wget {
			ui.ErrorMsg("No download tool found; install curl or wget")
			issues++
		}
	}

	if host.IsLinux() {
		ui.HeaderMsg("Package managers")
		managers := []string{"apt-get", "dnf", "yum"}
		found := ""
		for _, name := range managers {
			available := runner.LookPath(name)
			reportTool(name, available)
			if found == "" && available {
				found = name
			}
		}
		if found == "" {
			ui.WarningMsg("No supported package manager found; --with-deps will not work")
			issues++
		} else {
			ui.InfoMsg("Dependency step would use: %s", found)
		}
	}

	if host.IsDarwin() {
		ui.HeaderMsg("Disk image tools")
		checkTool("hdiutil", &issues)
		checkTool("cp", &issues)
	}

	if host.IsLinux() {
		ui.HeaderMsg("Install tools")
		checkTool("chmod", &issues)
	}

	ui.HeaderMsg("Summary")
	if issues == 0 {
		ui.SuccessMsg("No issues found! agent-browser is ready to use.")
	} else {
		ui.WarningMsg("Found %d issue(s). Some steps may not work.", issues)
	}

	return nil
}

func checkTool(name string, issues *int) {
	if runner.LookPath(name) {
		ui.SuccessMsg("%s found", name)
		return
	}
	ui.ErrorMsg("%s not found", name)
	*issues++
}

func reportTool(name string, available bool) {
	if available {
		ui.SuccessMsg("%s found", name)
	} else {
		ui.MutedMsg("  %s not found", name)
	}
}
