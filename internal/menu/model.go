package menu

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/macpurge/internal/clean"
	"github.com/lakshaymaurya-felt/macpurge/internal/config"
	"github.com/lakshaymaurya-felt/macpurge/internal/ui"
)

// Kind identifies what the user picked from the menu.
type Kind int

const (
	KindNone Kind = iota
	KindClean
	KindLargeFiles
	KindFlushDNS
	KindPurgeMemory
	KindPeriodic
	KindEverything
	KindQuit
)

// Selection is the result of one menu round.
type Selection struct {
	Kind   Kind
	Target config.CleanTarget // set when Kind == KindClean
}

// ─── Messages ────────────────────────────────────────────────────────────────

// estimateMsg carries one target's reclaimable size back to the model.
type estimateMsg struct {
	name  string
	bytes int64
}

// ─── Model ───────────────────────────────────────────────────────────────────

type item struct {
	kind   Kind
	label  string
	detail string
	target config.CleanTarget
}

// Model is the bubbletea model for the main menu. Target estimates load
// in the background while the menu is already interactive.
type Model struct {
	items     []item
	cursor    int
	estimates map[string]int64
	spin      spinner.Model
	engine    *clean.Engine
	osInfo    string
	freeDisk  int64
	choice    Selection
	quitting  bool
}

// New builds the menu model for the given targets.
func New(engine *clean.Engine, targets []config.CleanTarget, osInfo string, freeDisk int64) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = ui.Accent

	items := make([]item, 0, len(targets)+6)
	for _, t := range targets {
		items = append(items, item{
			kind:   KindClean,
			label:  "Clean " + t.Name,
			detail: t.Description,
			target: t,
		})
	}
	items = append(items,
		item{kind: KindLargeFiles, label: "Find Large Files", detail: "files over 500 MB in your home folder"},
		item{kind: KindFlushDNS, label: "Flush DNS Cache", detail: "dscacheutil + mDNSResponder"},
		item{kind: KindPurgeMemory, label: "Purge Inactive RAM", detail: "sudo purge"},
		item{kind: KindPeriodic, label: "Run Maintenance Scripts", detail: "periodic daily weekly monthly"},
		item{kind: KindEverything, label: "Run Everything", detail: "every cleanup plus maintenance"},
		item{kind: KindQuit, label: "Quit", detail: ""},
	)

	return Model{
		items:     items,
		estimates: make(map[string]int64),
		spin:      sp,
		engine:    engine,
		osInfo:    osInfo,
		freeDisk:  freeDisk,
	}
}

// Choice returns what the user picked, if anything.
func (m Model) Choice() Selection {
	return m.choice
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for _, it := range m.items {
		if it.kind == KindClean {
			cmds = append(cmds, estimateCmd(m.engine, it.target))
		}
	}
	return tea.Batch(cmds...)
}

// estimateCmd measures one target in the background.
func estimateCmd(engine *clean.Engine, target config.CleanTarget) tea.Cmd {
	return func() tea.Msg {
		rep := engine.Estimate(target)
		return estimateMsg{name: target.Name, bytes: rep.Total()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			m.choice = Selection{Kind: KindQuit}
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "enter":
			return m.pick(m.items[m.cursor])

		case "a":
			for _, it := range m.items {
				if it.kind == KindEverything {
					return m.pick(it)
				}
			}

		default:
			// Number keys jump straight to an item.
			if n := digit(key); n >= 1 && n <= len(m.items) {
				return m.pick(m.items[n-1])
			}
		}
		return m, nil

	case estimateMsg:
		m.estimates[msg.name] = msg.bytes
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) pick(it item) (tea.Model, tea.Cmd) {
	m.choice = Selection{Kind: it.kind, Target: it.target}
	m.quitting = true
	return m, tea.Quit
}

func digit(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}

// Run shows the menu and blocks until the user picks an entry.
func Run(engine *clean.Engine, targets []config.CleanTarget, osInfo string, freeDisk int64) (Selection, error) {
	p := tea.NewProgram(New(engine, targets, osInfo, freeDisk))
	out, err := p.Run()
	if err != nil {
		return Selection{}, err
	}
	m, ok := out.(Model)
	if !ok {
		return Selection{Kind: KindQuit}, nil
	}
	return m.Choice(), nil
}
