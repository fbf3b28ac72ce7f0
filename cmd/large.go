package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/macpurge/internal/analyze"
	"github.com/lakshaymaurya-felt/macpurge/internal/config"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

const (
	defaultMinSizeMB = 500
	defaultTopCount  = 10
	scanConcurrency  = 8
)

var (
	largeMinSizeMB int
	largeTop       int
)

var largeCmd = &cobra.Command{
	Use:   "large [path]",
	Short: "Find unusually large files",
	Long: `Scan for files over a size threshold, largest first.

Defaults to the home directory with a 500 MB threshold. Well-known
cache, dependency, and build directories are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := ""
		if len(args) == 1 {
			start = args[0]
		}
		if start == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("cannot resolve home directory: %w", err)
			}
			start = home
		}
		return runLargeScan(start, largeMinSizeMB, largeTop)
	},
}

func init() {
	largeCmd.Flags().IntVar(&largeMinSizeMB, "min-size", defaultMinSizeMB, "Minimum file size in MB")
	largeCmd.Flags().IntVar(&largeTop, "top", defaultTopCount, "How many results to show")
}

// runLargeScan runs one large-file scan, with live progress when stderr
// is a terminal.
func runLargeScan(start string, minSizeMB, top int) error {
	minSize := int64(minSizeMB) * 1024 * 1024
	fmt.Println()
	fmt.Println(ui.Header.Render(fmt.Sprintf("Large Files (>%d MB) in %s", minSizeMB, ui.DisplayPath(start))))

	scanner := analyze.NewScanner(scanConcurrency, config.ScanTopSkips(), config.ScanNestedSkips())

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions64(-1,
			progressbar.OptionSetDescription("  scanning"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		scanner.OnProgress = func(examined int64) {
			_ = bar.Set64(examined)
		}
	}

	files := scanner.Scan(start, minSize)
	if bar != nil {
		_ = bar.Finish()
	}

	analyze.PrintReport(files, top, scanner.Examined())
	return nil
}
