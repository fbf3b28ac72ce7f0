package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/clean"
	"github.com/lakshaymaurya-felt/macpurge/internal/config"
	"github.com/lakshaymaurya-felt/macpurge/internal/core"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

var (
	cleanDryRun bool
	cleanYes    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free up disk space",
	Long: `Clean caches, logs, and build artifacts to reclaim disk space.

Each category is estimated first and asks for confirmation before
anything is deleted. With no category flag every target is cleaned.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		targets, err := selectedTargets(cmd, home)
		if err != nil {
			return err
		}
		return runCleanFlow(newEngine(), targets, cleanDryRun, cleanYes)
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Preview reclaimable space without deleting")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip confirmation prompts")
	cleanCmd.Flags().Bool("all", false, "Clean every target")
	cleanCmd.Flags().Bool("logs", false, "Clean application and system logs")
	cleanCmd.Flags().Bool("caches", false, "Clean user and system caches")
	cleanCmd.Flags().Bool("xcode", false, "Clean Xcode DerivedData")
	cleanCmd.Flags().Bool("dev", false, "Clean developer tool caches")
	cleanCmd.Flags().Bool("trash", false, "Empty the trash")
}

// newEngine wires the production engine: SIP guard plus sudo-backed
// deleter.
func newEngine() *clean.Engine {
	return clean.NewEngine(
		clean.NewGuard(config.ProtectedPaths()),
		clean.NewDeleter(clean.SudoRemover{}),
	)
}

// selectedTargets maps category flags to configured targets. No flags,
// or --all, selects everything.
func selectedTargets(cmd *cobra.Command, home string) ([]config.CleanTarget, error) {
	flagToName := []struct{ flag, name string }{
		{"logs", "Logs"},
		{"caches", "Caches"},
		{"xcode", "XcodeDerivedData"},
		{"dev", "DevCaches"},
		{"trash", "Trash"},
	}

	all, _ := cmd.Flags().GetBool("all")
	var names []string
	for _, fn := range flagToName {
		if set, _ := cmd.Flags().GetBool(fn.flag); set {
			names = append(names, fn.name)
		}
	}
	if all || len(names) == 0 {
		return config.GetCleanTargets(home), nil
	}

	var targets []config.CleanTarget
	for _, name := range names {
		t, ok := config.GetTargetByName(home, name)
		if !ok {
			return nil, fmt.Errorf("unknown clean target %q", name)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// runCleanFlow drives each target through estimate, confirmation, and
// execute, then prints a grand total.
func runCleanFlow(engine *clean.Engine, targets []config.CleanTarget, dryRun, yes bool) error {
	var totalFreed int64
	for _, target := range targets {
		freed, err := runTarget(engine, target, dryRun, yes)
		if err != nil {
			return err
		}
		totalFreed += freed
	}

	if dryRun {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  Dry run complete. Re-run without --dry-run to delete."))
		return nil
	}
	if totalFreed > 0 {
		fmt.Println()
		fmt.Printf("  %s\n", ui.Header.Render(fmt.Sprintf("Successfully cleared %s of space.", core.FormatSize(totalFreed))))
		if home, err := os.UserHomeDir(); err == nil {
			if free, err := core.FreeSpace(home); err == nil {
				fmt.Printf("  %s\n", ui.Muted.Render(fmt.Sprintf("Disk now has %s available.", core.FormatSize(free))))
			}
		}
	}
	return nil
}

// runTarget estimates one target, reports it, and executes once the
// dry-run, zero-estimate, and confirmation gates all pass.
func runTarget(engine *clean.Engine, target config.CleanTarget, dryRun, yes bool) (int64, error) {
	header := "Clean " + target.Name
	if dryRun {
		header = "[DRY RUN] " + header
	}
	fmt.Println()
	fmt.Println(ui.Header.Render(header))

	est := engine.Estimate(target)
	printRoots(est)
	printSkips(est.Skipped)

	if dryRun {
		fmt.Printf("  Total reclaimable: %s\n", ui.Accent.Render(core.FormatSize(est.Total())))
		return 0, nil
	}
	if est.Total() == 0 {
		fmt.Println(ui.Muted.Render("  Nothing to clean."))
		return 0, nil
	}
	if !yes && !ui.Confirm("Clean "+target.Name+"?") {
		fmt.Println("  Skipped.")
		return 0, nil
	}
	if hasElevatedRoots(target) {
		if err := clean.EnsureElevationTool(); err != nil {
			return 0, err
		}
	}

	res := engine.Execute(target)
	printSkips(res.Skipped)
	fmt.Printf("  Freed: %s\n", ui.Success.Render(core.FormatSize(res.Total())))
	return res.Total(), nil
}

// printRoots prints one line per estimated root.
func printRoots(rep clean.Report) {
	for _, root := range rep.Roots {
		detail := ""
		if debug && root.Elevated {
			detail = ui.Muted.Render("  (sudo)")
		}
		fmt.Printf("  %s: %s%s\n",
			ui.DisplayPath(root.Path),
			ui.Success.Render(core.FormatSize(root.Bytes)),
			detail)
	}
}

func printSkips(skips []clean.Skip) {
	for _, s := range skips {
		fmt.Printf("  %s\n", ui.Muted.Render("skip "+ui.DisplayPath(s.Path)+": "+s.Reason))
	}
}

func hasElevatedRoots(target config.CleanTarget) bool {
	for _, r := range target.Roots {
		if r.RequiresAdmin {
			return true
		}
	}
	return false
}
