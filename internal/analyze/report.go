package analyze

import (
	"fmt"

	"github.com/lakshaymaurya-felt/macpurge/internal/core"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

// PrintReport prints the top scan hits as a plain list, largest first,
// with home-relative paths. examined is the total files examined, shown
// as a footer so the user can tell a quiet scan from a stuck one.
func PrintReport(files []LargeFile, limit int, examined int64) {
	if len(files) == 0 {
		fmt.Printf("  No files over the threshold (%s files scanned).\n",
			core.FormatCount(examined))
		return
	}
	if limit <= 0 || limit > len(files) {
		limit = len(files)
	}

	var total int64
	for _, f := range files[:limit] {
		total += f.Size
		fmt.Printf("  %s  %s\n",
			ui.Success.Render(fmt.Sprintf("%10s", core.FormatSize(f.Size))),
			ui.DisplayPath(f.Path))
	}

	fmt.Println()
	fmt.Printf("  Top %d total: %s\n", limit, ui.Accent.Render(core.FormatSize(total)))
	fmt.Printf("  %s\n", ui.Muted.Render(fmt.Sprintf("(%s files scanned)", core.FormatCount(examined))))
}
