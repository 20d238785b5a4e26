package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// titleHeight and helpBarHeight are the lines reserved above and below the viewport.
const (
	titleHeight   = 2
	helpBarHeight = 1
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

// Model is the Bubble Tea model for the contact table pager.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	help     help.Model
	keys     pagerKeys
	width    int
	ready    bool
	done     bool
}

// NewModel creates a pager showing content under title.
func NewModel(title, content string) Model {
	return Model{
		title:    title,
		content:  strings.TrimRight(content, "\n"),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     pagerKeyMap(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-titleHeight-helpBarHeight, 1)
		m.viewport.SetContent(m.content)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title, the scrollable table and the help bar.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
