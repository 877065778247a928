// Package picker is the built-in selector used when no external fuzzy
// finder is installed.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"launchbox/internal/models"
	"launchbox/internal/ui"
)

// visibleRows caps the rendered list
const visibleRows = 15

type model struct {
	apps     []models.App
	haystack []string // name + keywords per app, fuzzy match target
	filtered []int    // indexes into apps, in match order
	cursor   int
	input    textinput.Model
	choice   int // selected index into apps, -1 while undecided
}

func newModel(apps []models.App) *model {
	input := textinput.New()
	input.Placeholder = "Search applications..."
	input.Focus()

	haystack := make([]string, len(apps))
	for i := range apps {
		haystack[i] = apps[i].PlainName() + " " + apps[i].Keywords
	}

	m := &model{
		apps:     apps,
		haystack: haystack,
		input:    input,
		choice:   -1,
	}
	m.filter()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "ctrl+j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.filtered) > 0 {
			m.choice = m.filtered[m.cursor]
			return m, tea.Quit
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.filter()
		return m, cmd
	}

	return m, nil
}

// filter recomputes the visible rows from the current query
func (m *model) filter() {
	query := m.input.Value()

	if query == "" {
		m.filtered = make([]int, len(m.apps))
		for i := range m.apps {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.haystack)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View() + "\n\n")

	for row, index := range m.filtered {
		if row >= visibleRows {
			b.WriteString(ui.MutedStyle.Render(fmt.Sprintf("  … %d more", len(m.filtered)-visibleRows)) + "\n")
			break
		}

		app := &m.apps[index]
		line := app.Name
		if app.Description != "" {
			line += "  " + ui.MutedStyle.Render(app.Description)
		}

		if row == m.cursor {
			b.WriteString(ui.CursorStyle.Render(">") + ui.SelectedItemStyle.Render(line) + "\n")
		} else {
			b.WriteString(" " + ui.ItemStyle.Render(line) + "\n")
		}
	}

	if len(m.filtered) == 0 {
		b.WriteString(ui.MutedStyle.Render("  no matches") + "\n")
	}

	return b.String()
}

// Pick runs the interactive picker over the menu. A nil record with a nil
// error means the user cancelled.
func Pick(apps []models.App) (*models.App, error) {
	p := tea.NewProgram(newModel(apps))

	result, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}

	m := result.(*model)
	if m.choice < 0 {
		return nil, nil
	}
	return &m.apps[m.choice], nil
}
