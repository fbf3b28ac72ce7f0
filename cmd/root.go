package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/config"
	"github.com/lakshaymaurya-felt/macpurge/internal/core"
	"github.com/lakshaymaurya-felt/macpurge/internal/maintain"
	"github.com/lakshaymaurya-felt/macpurge/internal/menu"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "mp",
	Short: "Reclaim disk space and maintain your Mac",
	Long: `MacPurge - lightweight macOS cleanup and maintenance.

Clean caches, logs, and build artifacts, hunt down large files,
and run the usual one-shot maintenance tasks from one place.
Every cleanup is estimated first and confirmed before deletion.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return core.RequireMacOS()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a subcommand: interactive menu on a terminal, help
		// otherwise.
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return cmd.Help()
		}
		return runInteractiveMenu()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(largeCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(dnsCmd)
	rootCmd.AddCommand(ramCmd)
	rootCmd.AddCommand(periodicCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInteractiveMenu loops the main menu until the user quits.
func runInteractiveMenu() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot resolve home directory: %w", err)
	}
	engine := newEngine()
	targets := config.GetCleanTargets(home)

	for {
		free, _ := core.FreeSpace(home)
		sel, err := menu.Run(engine, targets, core.MacOSVersionString(), free)
		if err != nil {
			return err
		}

		switch sel.Kind {
		case menu.KindClean:
			if err := runCleanFlow(engine, []config.CleanTarget{sel.Target}, false, false); err != nil {
				return err
			}
		case menu.KindLargeFiles:
			if err := runLargeScan(home, defaultMinSizeMB, defaultTopCount); err != nil {
				return err
			}
		case menu.KindFlushDNS:
			runAction(maintain.FlushDNS(), false)
		case menu.KindPurgeMemory:
			runAction(maintain.PurgeMemory(), false)
		case menu.KindPeriodic:
			runAction(maintain.RunPeriodic(), false)
		case menu.KindEverything:
			if err := runEverything(engine, targets, false, false); err != nil {
				return err
			}
		default:
			return nil
		}
		ui.WaitEnter()
	}
}
