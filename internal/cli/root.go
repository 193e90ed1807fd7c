// Package cli implements the command-line interface for agent-browser.
package cli

import (
	"context"

	"agentbrowser/internal/config"
	"agentbrowser/internal/executor"
	"agentbrowser/internal/ui"
	"agentbrowser/pkg/platform"
	"agentbrowser/pkg/release"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	yes     bool
	verbose bool
	noColor bool

	// Global state
	cfg    *config.Config
	runner executor.Runner
	host   *platform.Info
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "agent-browser",
	Short: "Provision the BrowserOS browser runtime on this machine",
	Long: `agent-browser installs the BrowserOS browser for the host platform:
it resolves the right release artifact for this OS and architecture,
downloads it, unpacks it, and reports the executable path for your
shell to adopt.

Examples:
  agent-browser install              # Download and install BrowserOS
  agent-browser install --with-deps  # Also install system libraries (Linux)
  agent-browser system               # Show what was detected
  agent-browser doctor               # Check the external tools it relies on`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(doctorCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	runner = executor.New(cfg.Output.Verbose)
	host = platform.Detect(context.Background())

	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print agent-browser version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("agent-browser version %s", Version)
		ui.MutedMsg("  BrowserOS release: %s", release.Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
