package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/clean"
	"github.com/lakshaymaurya-felt/macpurge/internal/config"
	"github.com/lakshaymaurya-felt/macpurge/internal/maintain"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

var (
	allDryRun bool
	allYes    bool
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every cleanup and maintenance task",
	Long:  "Clean every target, then flush DNS, purge inactive memory, and run the periodic scripts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		return runEverything(newEngine(), config.GetCleanTargets(home), allDryRun, allYes)
	},
}

func init() {
	allCmd.Flags().BoolVar(&allDryRun, "dry-run", false, "Preview without deleting or running anything")
	allCmd.Flags().BoolVarP(&allYes, "yes", "y", false, "Skip confirmation prompts")
}

// runEverything is the run-all flow: every clean target first, then the
// one-shot maintenance actions.
func runEverything(engine *clean.Engine, targets []config.CleanTarget, dryRun, yes bool) error {
	if err := runCleanFlow(engine, targets, dryRun, yes); err != nil {
		return err
	}
	for _, action := range []maintain.Action{
		maintain.FlushDNS(),
		maintain.PurgeMemory(),
		maintain.RunPeriodic(),
	} {
		runAction(action, dryRun)
	}
	return nil
}

// runAction runs one maintenance action, or prints what would run. Action
// failures are reported inline and never abort the surrounding flow.
func runAction(action maintain.Action, dryRun bool) {
	fmt.Println()
	if dryRun {
		fmt.Println(ui.Header.Render("[DRY RUN] " + action.Name))
		fmt.Printf("  Would run: %s\n", action.CommandLine())
		return
	}

	fmt.Println(ui.Header.Render(action.Name))
	if debug {
		fmt.Println(ui.Muted.Render("  " + action.CommandLine()))
	}
	if err := (maintain.Runner{}).Run(action); err != nil {
		fmt.Printf("  %s\n", ui.Err.Render("Failed: "+err.Error()))
		return
	}
	fmt.Printf("  %s\n", ui.Success.Render("Done."))
}
