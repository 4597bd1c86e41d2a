// Package setup provides the interactive session configuration flow.
package setup

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typebench/internal/model"
)

// ErrAborted reports that the user left setup without completing it.
var ErrAborted = errors.New("setup aborted")

const (
	stepMode = iota
	stepLimit
	stepDifficulty
	stepDone
)

var (
	timeOptions  = []time.Duration{15 * time.Second, 30 * time.Second, 60 * time.Second, 120 * time.Second}
	wordOptions  = []int{10, 20, 30, 40, 50}
	listStyle    = lipgloss.NewStyle().Margin(1, 2)
	defaultWidth = 48
	listHeight   = 16
)

type option struct {
	title string
	desc  string
}

func (o option) Title() string       { return o.title }
func (o option) Description() string { return o.desc }
func (o option) FilterValue() string { return o.title }

// Model implements the Bubble Tea setup flow: mode, then time limit or word
// count when the mode needs one, then difficulty.
type Model struct {
	step    int
	list    list.Model
	result  model.Config
	aborted bool

	width  int
	height int
}

// NewModel constructs the setup model. Defaults position the initial cursor.
func NewModel(defaults model.Config) *Model {
	m := &Model{step: stepMode, result: defaults}
	m.list = newOptionList("Pick a mode", modeOptions(), modeIndex(defaults.Mode))
	return m
}

func newOptionList(title string, items []list.Item, selected int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	if selected >= 0 && selected < len(items) {
		l.Select(selected)
	}
	return l
}

func modeOptions() []list.Item {
	return []list.Item{
		option{title: "Time", desc: "type until the clock runs out"},
		option{title: "Words", desc: "type a fixed number of words"},
		option{title: "Quote", desc: "type a full quote"},
	}
}

func modeIndex(m model.Mode) int {
	switch m {
	case model.ModeWords:
		return 1
	case model.ModeQuote:
		return 2
	default:
		return 0
	}
}

func timeItems() []list.Item {
	items := make([]list.Item, 0, len(timeOptions))
	for _, d := range timeOptions {
		items = append(items, option{title: fmt.Sprintf("%ds", int(d.Seconds())), desc: "time limit"})
	}
	return items
}

func wordItems() []list.Item {
	items := make([]list.Item, 0, len(wordOptions))
	for _, n := range wordOptions {
		items = append(items, option{title: fmt.Sprintf("%d", n), desc: "words"})
	}
	return items
}

func difficultyItems() []list.Item {
	return []list.Item{
		option{title: "Easy", desc: "short words"},
		option{title: "Medium", desc: "medium-length words"},
		option{title: "Hard", desc: "all words"},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := listStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.advance()
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) advance() (tea.Model, tea.Cmd) {
	index := m.list.Index()
	switch m.step {
	case stepMode:
		switch index {
		case 1:
			m.result.Mode = model.ModeWords
		case 2:
			m.result.Mode = model.ModeQuote
		default:
			m.result.Mode = model.ModeTime
		}
		if m.result.Mode == model.ModeQuote {
			m.step = stepDifficulty
			m.list = newOptionList("Pick a difficulty", difficultyItems(), int(m.result.Difficulty))
		} else {
			m.step = stepLimit
			m.list = m.limitList()
		}
	case stepLimit:
		if m.result.Mode == model.ModeTime {
			m.result.TimeLimit = timeOptions[index]
		} else {
			m.result.WordCount = wordOptions[index]
		}
		m.step = stepDifficulty
		m.list = newOptionList("Pick a difficulty", difficultyItems(), int(m.result.Difficulty))
	case stepDifficulty:
		m.result.Difficulty = model.Difficulty(index)
		m.step = stepDone
		return m, tea.Quit
	}
	if m.width > 0 {
		frameW, frameH := listStyle.GetFrameSize()
		m.list.SetSize(m.width-frameW, m.height-frameH)
	}
	return m, nil
}

func (m *Model) limitList() list.Model {
	if m.result.Mode == model.ModeTime {
		return newOptionList("Pick a time limit", timeItems(), timeIndex(m.result.TimeLimit))
	}
	return newOptionList("Pick a word count", wordItems(), wordIndex(m.result.WordCount))
}

func timeIndex(d time.Duration) int {
	for i, opt := range timeOptions {
		if opt == d {
			return i
		}
	}
	return 1 // 30s
}

func wordIndex(n int) int {
	for i, opt := range wordOptions {
		if opt == n {
			return i
		}
	}
	return 1 // 20 words
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.step == stepDone {
		return ""
	}
	return listStyle.Render(m.list.View())
}

// Run drives the setup flow to completion and returns the chosen config.
func Run(defaults model.Config) (model.Config, error) {
	m := NewModel(defaults)
	program := tea.NewProgram(m)
	final, err := program.Run()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to run setup: %w", err)
	}
	result, ok := final.(*Model)
	if !ok || result.aborted || result.step != stepDone {
		return model.Config{}, ErrAborted
	}
	return result.result, nil
}
