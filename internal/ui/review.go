// Package ui contains the interactive terminal front end for reviewing
// unused-import findings before they are applied.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ReviewItem is one unused import offered for removal. Remove starts true;
// the user may toggle individual findings to keep them.
type ReviewItem struct {
	File   string
	Line   uint32
	Col    uint32
	Dotted string
	Remove bool
}

type reviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Apply  key.Binding
	Quit   key.Binding
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Apply, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.All},
		{k.Apply, k.Quit},
	}
}

var reviewKeys = reviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle all"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "cancel"),
	),
}

// ReviewModel is a Bubble Tea model listing findings for interactive review.
type ReviewModel struct {
	items    []ReviewItem
	cursor   int
	width    int
	help     help.Model
	accepted bool
}

// NewReviewModel returns a model over the given findings.
func NewReviewModel(items []ReviewItem) *ReviewModel {
	return &ReviewModel{
		items: items,
		width: 80,
		help:  help.New(),
	}
}

// Accepted reports whether the user confirmed the removal set.
func (m *ReviewModel) Accepted() bool { return m.accepted }

// Items returns the findings with the user's final keep/remove choices.
func (m *ReviewModel) Items() []ReviewItem { return m.items }

func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, reviewKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, reviewKeys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, reviewKeys.Toggle):
			if len(m.items) > 0 {
				m.items[m.cursor].Remove = !m.items[m.cursor].Remove
			}
		case key.Matches(msg, reviewKeys.All):
			all := true
			for _, it := range m.items {
				if !it.Remove {
					all = false
					break
				}
			}
			for i := range m.items {
				m.items[i].Remove = !all
			}
		case key.Matches(msg, reviewKeys.Apply):
			m.accepted = true
			return m, tea.Quit
		case key.Matches(msg, reviewKeys.Quit):
			m.accepted = false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *ReviewModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	removeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	keepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("unused imports (%d)", len(m.items))))
	b.WriteString("\n\n")

	for i, it := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		action := keepStyle.Render("[keep]  ")
		if it.Remove {
			action = removeStyle.Render("[remove]")
		}
		loc := fmt.Sprintf("%s:%d:%d", it.File, it.Line, it.Col)
		line := fmt.Sprintf("%s%s %s  %s", marker, action, it.Dotted, truncate(loc, m.width-len(it.Dotted)-16))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(reviewKeys))
	b.WriteString("\n")
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
