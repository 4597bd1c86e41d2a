package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typebench/internal/model"
	"github.com/verte-zerg/typebench/internal/session"
)

const tickInterval = 100 * time.Millisecond

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	skippedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Strikethrough(true)
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea typing UI. It owns no typing state: every
// frame is painted from a session snapshot.
type Model struct {
	sess *session.Session
	cfg  model.Config

	width  int
	height int
}

// NewModel constructs a typing TUI model over a session.
func NewModel(sess *session.Session, cfg model.Config) *Model {
	return &Model{sess: sess, cfg: cfg}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.sess.Tick()
		if m.sess.Phase() == session.PhaseFinished {
			return m, nil
		}
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.sess.Phase() {
	case session.PhaseFinished:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				return m, tea.Quit
			}
		}
		return m, nil
	case session.PhaseNotStarted:
		if msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		// The prompt keystroke starts the clock and is not judged, so a
		// time-bound session expires even if nothing else is typed.
		if err := m.sess.Start(); err != nil {
			logErrf("failed to start session: %v\n", err)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.sess.Abort()
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.sess.Apply(session.Keystroke{Backspace: true})
		return m, nil
	case tea.KeySpace:
		m.sess.Apply(session.Keystroke{Rune: ' '})
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.sess.Apply(session.Keystroke{Rune: r})
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.sess.Snapshot()
	switch snap.Phase {
	case session.PhaseNotStarted:
		return m.place(headerStyle.Render("Press any key to start..."))
	case session.PhaseFinished:
		return m.place(m.renderResults(snap))
	default:
		return m.renderTyping(snap)
	}
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderTyping(snap session.Snapshot) string {
	header := headerStyle.Render(m.renderHeader(snap))
	cursorIndex := -1
	if snap.Cursor < len(snap.Target) {
		cursorIndex = snap.Cursor
	}
	styledRunes := buildStyledRunes(snap.Target, snap.States, cursorIndex)
	if m.width == 0 || m.height == 0 {
		return header + "\n\n" + renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := footerStyle.Render("esc: finish  ctrl+c: quit")
	if m.height < 4 {
		return m.place(content)
	}
	headerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, header)
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return headerLine + "\n" + body + "\n" + footerLine
}

func (m *Model) renderHeader(snap session.Snapshot) string {
	var clock string
	if m.cfg.Mode == model.ModeTime {
		clock = fmt.Sprintf("Time Left %s", formatClock(snap.Remaining))
	} else {
		clock = fmt.Sprintf("Time %s", formatClock(snap.Elapsed))
	}
	if snap.Elapsed < time.Second {
		return clock + "  ·  Gross - | Net - | Accuracy -"
	}
	return fmt.Sprintf("%s  ·  Gross %.0f | Net %.0f | Accuracy %.1f%%",
		clock, snap.GrossWPM, snap.NetWPM, snap.Accuracy)
}

func (m *Model) renderResults(snap session.Snapshot) string {
	lines := []string{
		resultTitleStyle.Render("Session complete"),
		"",
		fmt.Sprintf("Gross WPM   %s", resultValueStyle.Render(fmt.Sprintf("%.1f", snap.GrossWPM))),
		fmt.Sprintf("Net WPM     %s", resultValueStyle.Render(fmt.Sprintf("%.1f", snap.NetWPM))),
		fmt.Sprintf("Accuracy    %s", resultValueStyle.Render(fmt.Sprintf("%.2f%%", snap.Accuracy))),
		fmt.Sprintf("Time Taken  %s", resultValueStyle.Render(formatClock(snap.Elapsed))),
		fmt.Sprintf("Words       %s", resultValueStyle.Render(fmt.Sprintf("%d", snap.CompletedWords))),
		"",
		footerStyle.Render("enter/esc/q: exit"),
	}
	return strings.Join(lines, "\n")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
