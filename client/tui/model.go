// Package tui renders a game session in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/client/sequencer"
	"github.com/cbodonnell/connectfour/client/session"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("27")).Padding(0, 1)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	playerAStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	playerBStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	winningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

const (
	discGlyph  = "●"
	emptyGlyph = "·"
	cursorMark = "▼"
)

type connectedMsg struct {
	err error
}

type moveDoneMsg struct {
	column   int
	accepted bool
	err      error
}

type resetDoneMsg struct {
	err error
}

// Model is the bubbletea model of a terminal game session.
type Model struct {
	ctx     context.Context
	session *session.Session
	keys    keyMap
	spinner spinner.Model
	logger  *log.Logger

	cursor int
	// pending counts requests that have not completed yet.
	pending int
	// notice is a one-line note about the last thing that happened.
	notice   string
	quitting bool
}

type NewModelOptions struct {
	// Context bounds the requests made by the model.
	Context context.Context
	Session *session.Session
	Logger  *log.Logger
}

func NewModel(opts NewModelOptions) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = noticeStyle
	return Model{
		ctx:     ctx,
		session: opts.Session,
		keys:    defaultKeys,
		spinner: sp,
		logger:  logger.WithComponent("tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.connect())
}

func (m Model) connect() tea.Cmd {
	return func() tea.Msg {
		return connectedMsg{err: m.session.Connect(m.ctx)}
	}
}

func (m Model) move(col int) tea.Cmd {
	return func() tea.Msg {
		accepted, err := m.session.Move(m.ctx, col)
		return moveDoneMsg{column: col, accepted: accepted, err: err}
	}
}

func (m Model) reset() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: m.session.Reset(m.ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectedMsg:
		if msg.err != nil {
			m.logger.Debug("Connect failed: %v", msg.err)
		}
		return m, nil
	case moveDoneMsg:
		m.pending--
		m.drainEvents()
		if msg.err == nil && !msg.accepted {
			m.logger.Debug("Move in column %d rejected", msg.column)
		}
		return m, nil
	case resetDoneMsg:
		m.pending--
		m.drainEvents()
		if msg.err == nil {
			m.notice = ""
		}
		return m, nil
	case spinner.TickMsg:
		// ticks keep the board current while a move is being presented
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.drainEvents()
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.session.View()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < view.Cols-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Column):
		col := int(msg.String()[0] - '1')
		if col >= view.Cols {
			return m, nil
		}
		m.cursor = col
		m.pending++
		return m, m.move(col)
	case key.Matches(msg, m.keys.Drop):
		m.pending++
		return m, m.move(m.cursor)
	case key.Matches(msg, m.keys.Reset):
		m.pending++
		return m, m.reset()
	}
	return m, nil
}

// drainEvents turns session events into the notice line.
func (m *Model) drainEvents() {
	items, err := m.session.Events().ReadAllMessages()
	if err != nil {
		m.logger.Error("Failed to read session events: %v", err)
		return
	}
	for _, item := range items {
		event, ok := item.(sequencer.Event)
		if !ok {
			continue
		}
		switch event.Type {
		case sequencer.EventHumanApplied:
			m.notice = fmt.Sprintf("%s played column %d.", moverName(event.Cell, m.session.View().Mode, false), event.Position.Col+1)
		case sequencer.EventAutomatedApplied:
			m.notice = fmt.Sprintf("%s played column %d.", moverName(event.Cell, m.session.View().Mode, true), event.Position.Col+1)
		case sequencer.EventBoardReplaced:
			m.notice = ""
		}
	}
}

func moverName(c types.Cell, mode types.Mode, automated bool) string {
	if mode == types.ModeVsHuman {
		return fmt.Sprintf("Player %s", c.Symbol())
	}
	if automated {
		return "Computer"
	}
	return "You"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := m.session.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Connect Four"))
	b.WriteString("\n\n")

	status := statusStyle.Render(view.Status)
	if strings.HasPrefix(view.Status, "Error") {
		status = errorStyle.Render(view.Status)
	}
	b.WriteString(status)
	if m.pending > 0 || view.State != sequencer.StateIdle {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(renderBoard(view, m.cursor))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(renderHelp(m.keys))
	b.WriteString("\n")
	return b.String()
}

func renderBoard(view session.View, cursor int) string {
	var rows []string

	marks := make([]string, view.Cols)
	for c := range marks {
		marks[c] = " "
		if c == cursor && view.ColumnEnabled(c) {
			marks[c] = cursorStyle.Render(cursorMark)
		}
	}
	rows = append(rows, strings.Join(marks, " "))

	for r := 0; r < view.Rows; r++ {
		cells := make([]string, view.Cols)
		for c := 0; c < view.Cols; c++ {
			cells[c] = renderCell(view.Appearance(r, c))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	numbers := make([]string, view.Cols)
	for c := range numbers {
		numbers[c] = noticeStyle.Render(fmt.Sprintf("%d", (c+1)%10))
	}
	rows = append(rows, strings.Join(numbers, " "))
	return boardStyle.Render(strings.Join(rows, "\n"))
}

func renderCell(a highlight.Appearance) string {
	switch a {
	case highlight.AppearancePlayerA:
		return playerAStyle.Render(discGlyph)
	case highlight.AppearancePlayerB:
		return playerBStyle.Render(discGlyph)
	case highlight.AppearanceWinning:
		return winningStyle.Render(discGlyph)
	}
	return emptyStyle.Render(emptyGlyph)
}

func renderHelp(k keyMap) string {
	parts := make([]string, 0, len(k.bindings()))
	for _, binding := range k.bindings() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
