package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"agentbrowser/internal/config"
	"agentbrowser/internal/ui"
	"agentbrowser/pkg/fetch"
	"agentbrowser/pkg/installer"
	"agentbrowser/pkg/release"
	"agentbrowser/pkg/sysdeps"

	"github.com/spf13/cobra"
)

var withDeps bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download and install BrowserOS for this machine",
	Long: `Install the pinned BrowserOS release for the host platform.

On macOS the disk image is mounted and the application bundle copied
into ~/.browseros. On Linux the AppImage is copied into ~/.browseros/bin
and marked executable. On Windows the installer is downloaded for you to
run manually.

Examples:
  agent-browser install              # Download and install
  agent-browser install --with-deps  # Also install shared libraries (Linux)`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&withDeps, "with-deps", false, "install system shared-library dependencies first (Linux only)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	// Every fatal failure funnels through here so user-visible error
	// reporting happens in exactly one place.
	if err := installFlow(context.Background()); err != nil {
		ui.ErrorMsg("%v", err)
		return err
	}
	return nil
}

// installFlow sequences the full pipeline: dependency step, artifact
// resolution, download, platform install, report.
func installFlow(ctx context.Context) error {
	if host.IsLinux() {
		if withDeps {
			if err := installSystemDeps(ctx); err != nil {
				return err
			}
		} else {
			ui.WarningMsg("Linux detected. If the browser fails to launch, run:")
			ui.Println("  agent-browser install --with-deps")
			ui.Println("")
		}
	}

	artifact, ok := release.Resolve(host.OS, host.Arch)
	if !ok {
		return fmt.Errorf("%w: %s / %s", ErrUnsupportedPlatform, host.RawOS, host.Arch)
	}

	root := cfg.ResolveInstallRoot()
	downloadsDir := config.DownloadsDir(root)
	if err := os.MkdirAll(downloadsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create download directory %s: %w", downloadsDir, err)
	}

	downloadPath := filepath.Join(downloadsDir, artifact.FileName)
	ui.InfoMsg("%s Downloading BrowserOS %s...", ui.Cyan("Installing"), release.Version)
	if err := fetch.Download(ctx, runner, host.OS, artifact.URL, downloadPath); err != nil {
		return err
	}

	var executablePath string
	if inst, ok := installer.For(host.OS, root, runner); ok {
		sp := ui.NewSpinner("Installing BrowserOS")
		sp.Start()
		path, err := inst.Install(ctx, downloadPath)
		if err != nil {
			sp.Stop()
			return err
		}
		sp.Success("Installing BrowserOS - done")
		executablePath = path
	}

	report(downloadPath, executablePath)
	return nil
}

// installSystemDeps resolves the host's package manager and installs the
// shared libraries BrowserOS needs. A missing package manager is fatal to the
// run; a failed install command is only a warning since missing libraries
// affect the browser at runtime, not the download and unpack.
func installSystemDeps(ctx context.Context) error {
	ui.InfoMsg("Installing system dependencies...")

	profile, err := sysdeps.Resolve(ctx, runner)
	if err != nil {
		return err
	}

	command := profile.InstallCommand()
	ui.Println("Running: %s", command)

	if !cfg.General.AutoConfirm {
		confirmed, err := ui.Confirm("Proceed with dependency installation?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			ui.WarningMsg("Skipping dependency installation")
			return nil
		}
	}

	if err := profile.Install(ctx, runner); err != nil {
		ui.WarningMsg("Failed to install some dependencies. You may need to run manually with sudo.")
		return nil
	}

	ui.SuccessMsg("System dependencies installed")
	return nil
}

// report prints the result paths and the shell hint for adopting the
// installed executable.
func report(downloadPath, executablePath string) {
	ui.SuccessMsg("BrowserOS package downloaded")
	ui.MutedMsg("  %s", downloadPath)

	if executablePath != "" {
		ui.SuccessMsg("BrowserOS executable ready:")
		ui.MutedMsg("  %s", executablePath)
		ui.Println("")
		ui.Println("Set this in your shell:")
		ui.Println("  export AGENT_BROWSER_EXECUTABLE_PATH=%q", executablePath)
	} else if host.IsWindows() {
		ui.Println("")
		ui.Println("Run the downloaded installer, then set:")
		ui.Println(`  set AGENT_BROWSER_EXECUTABLE_PATH=C:\Program Files\BrowserOS\BrowserOS.exe`)
	}

	if host.IsLinux() && !withDeps {
		ui.Println("")
		ui.Println("%s If BrowserOS fails to start due to missing shared libraries, run:", ui.Yellow("Note:"))
		ui.Println("  agent-browser install --with-deps")
	}
}
