package watch

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barlight/barlight/internal/block"
	"github.com/barlight/barlight/internal/ui"
)

const (
	// historySize bounds the CPU usage series kept for the sparkline.
	historySize = 60
	// sparklineWidth is how many history points the sparkline shows.
	sparklineWidth = 30
)

// spinnerFrames animate while a block is collecting (◐ ◓ ◑ ◒).
var spinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// blockState is the latest known render for one block.
type blockState struct {
	text       string
	err        error
	collecting bool
	lastUpdate time.Time
}

// tickMsg signals that a block's refresh interval elapsed.
type tickMsg struct {
	index int
}

// contentMsg carries a finished collection for one block.
type contentMsg struct {
	index    int
	text     string
	err      error
	usage    float64
	hasUsage bool
	at       time.Time
}

// Model is the Bubble Tea model for the live bar dashboard. Each block
// refreshes on its own interval; collection runs in the command goroutine
// so a stalled collector never blocks the other blocks or the UI loop.
type Model struct {
	blocks  []block.Block
	states  []blockState
	history []float64
	spinner spinner.Model

	width    int
	quitting bool
}

// NewModel creates a dashboard model over the given blocks.
func NewModel(blocks []block.Block) Model {
	sp := spinner.New()
	sp.Spinner = spinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorSecondary)

	states := make([]blockState, len(blocks))
	for i := range states {
		states[i].collecting = true
	}

	return Model{
		blocks:  blocks,
		states:  states,
		spinner: sp,
	}
}

// Init kicks off an immediate collection for every block plus the spinner.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.blocks)+1)
	for i := range m.blocks {
		cmds = append(cmds, m.collectCmd(i))
	}
	cmds = append(cmds, m.spinner.Tick)
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.states[msg.index].collecting = true
		return m, m.collectCmd(msg.index)

	case contentMsg:
		st := &m.states[msg.index]
		st.collecting = false
		st.err = msg.err
		st.lastUpdate = msg.at
		if msg.err == nil {
			st.text = msg.text
		}
		if msg.hasUsage {
			m.history = append(m.history, msg.usage)
			if len(m.history) > historySize {
				m.history = m.history[len(m.history)-historySize:]
			}
		}
		// Next refresh is scheduled only after this one finishes, so a
		// single block instance never collects concurrently.
		return m, m.tickCmd(msg.index)
	}

	return m, nil
}

// View renders the bar line, the CPU sparkline, and a quit hint.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	out := ui.RenderBar(m.segments()) + "\n"

	if spark := ui.RenderSparkline(m.history, sparklineWidth); spark != "" {
		out += spark + "\n"
	}

	hint := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("q to quit")
	return out + hint
}

// segments converts block states into renderable bar segments.
func (m Model) segments() []ui.Segment {
	segments := make([]ui.Segment, 0, len(m.blocks))
	for i, b := range m.blocks {
		st := m.states[i]
		switch {
		case st.err != nil:
			segments = append(segments, ui.Segment{Text: "collect failed", Color: ui.ColorError})
		case st.text == "" && st.collecting:
			segments = append(segments, ui.Segment{Text: m.spinner.View(), Color: ui.ColorMuted})
		default:
			segments = append(segments, ui.Segment{Text: st.text, Color: b.Color()})
		}
	}
	return segments
}

// collectCmd runs one block's collection off the UI goroutine.
func (m Model) collectCmd(i int) tea.Cmd {
	b := m.blocks[i]
	return func() tea.Msg {
		text, err := b.Content()
		msg := contentMsg{index: i, text: text, err: err, at: time.Now()}
		if cpu, ok := b.(*block.Cpu); ok && err == nil {
			msg.usage = cpu.LastUsage()
			msg.hasUsage = true
		}
		return msg
	}
}

// tickCmd schedules the next refresh for one block.
func (m Model) tickCmd(i int) tea.Cmd {
	interval := m.blocks[i].Interval()
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{index: i}
	})
}
