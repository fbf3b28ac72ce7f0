package menu

import (
	"fmt"
	"strings"

	"github.com/lakshaymaurya-felt/macpurge/internal/core"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(ui.Title.Render("MacPurge"))
	b.WriteString(ui.Muted.Render("  ·  reclaim disk space"))
	b.WriteString("\n  ")
	b.WriteString(ui.Muted.Render(m.headerInfo()))
	b.WriteString("\n\n")

	for i, it := range m.items {
		b.WriteString(m.renderItem(i, it))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(ui.Muted.Render("↑/↓ move · enter select · 1-9/a jump · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) headerInfo() string {
	if m.freeDisk > 0 {
		return fmt.Sprintf("%s  ·  %s free", m.osInfo, core.FormatSize(m.freeDisk))
	}
	return m.osInfo
}

func (m Model) renderItem(i int, it item) string {
	cursor := "  "
	if i == m.cursor {
		cursor = ui.Accent.Render("> ")
	}

	label := it.label
	if i == m.cursor {
		label = ui.Header.Render(label)
	}

	line := fmt.Sprintf("  %s%s  %-28s", cursor, ui.Muted.Render(keyFor(i, it.kind)), label)
	if it.kind == KindClean {
		if bytes, ok := m.estimates[it.target.Name]; ok {
			line += ui.Success.Render(core.FormatSize(bytes))
		} else {
			line += m.spin.View()
		}
	} else if it.detail != "" {
		line += ui.Muted.Render(it.detail)
	}
	return line
}

// keyFor labels each row with its jump key: digits for regular entries,
// a/q for the run-everything and quit rows.
func keyFor(i int, kind Kind) string {
	switch kind {
	case KindEverything:
		return "a"
	case KindQuit:
		return "q"
	default:
		return fmt.Sprintf("%d", i+1)
	}
}
