package tui

import (
	"fmt"
	"strings"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type exportDoneMsg struct {
	dest string
	err  error
}

// CuratedModel is the shortlist screen. Clearing is destructive and
// irreversible within the session, so it demands a second keystroke.
type CuratedModel struct {
	parent          *AppModel
	items           []domain.ResultItem
	cursor          int
	confirmingClear bool
	statusMessage   string
	err             error
}

func NewCuratedModel(parent *AppModel) *CuratedModel {
	return &CuratedModel{parent: parent}
}

func (m *CuratedModel) Init() tea.Cmd {
	m.items = m.parent.curator.Items()
	m.cursor = 0
	m.confirmingClear = false
	m.statusMessage = ""
	m.err = nil
	return nil
}

func (m *CuratedModel) refresh() {
	m.items = m.parent.curator.Items()
	if m.cursor >= len(m.items) && m.cursor > 0 {
		m.cursor = len(m.items) - 1
	}
}

func (m *CuratedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.statusMessage = fmt.Sprintf("Exported to %s", msg.dest)
		return m, nil

	case tea.KeyMsg:
		if m.confirmingClear {
			switch msg.String() {
			case "y":
				m.parent.curator.Clear()
				m.confirmingClear = false
				m.statusMessage = "Shortlist cleared."
				m.refresh()
			default:
				m.confirmingClear = false
				m.statusMessage = "Clear cancelled."
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(showResultsMsg{})
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		}

		switch msg.String() {
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "d", "x":
			if m.cursor < len(m.items) {
				item := m.items[m.cursor]
				if m.parent.curator.Remove(item.ID) {
					m.statusMessage = fmt.Sprintf("Removed %q.", item.Title)
				}
				m.refresh()
			}
		case "C":
			if len(m.items) > 0 {
				m.confirmingClear = true
				m.statusMessage = ""
			}
		case "e":
			if len(m.items) == 0 {
				m.statusMessage = "Nothing to export."
				return m, nil
			}
			return m, func() tea.Msg {
				dest, err := m.parent.curator.ExportToSink()
				return exportDoneMsg{dest: dest, err: err}
			}
		case "b":
			return m, m.parent.send(showResultsMsg{})
		}
	}

	return m, nil
}

func (m *CuratedModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render(fmt.Sprintf("Shortlist (%d)", len(m.items))))
	b.WriteString("\n\n")

	if m.confirmingClear {
		b.WriteString(warningMessageStyle.Render(
			fmt.Sprintf("Clear all %d items? This cannot be undone. [y] yes, any other key cancels.", len(m.items))))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString("The shortlist is empty. Add results with [a] on the results screen.\n")
	}

	for i, item := range m.items {
		if m.cursor == i {
			b.WriteString(selectedListItemStyle.Render(item.Title))
		} else {
			b.WriteString(listItemStyle.Render(item.Title))
		}
		b.WriteString("\n")
		b.WriteString(itemMetaStyle.Render(urlStyle.Render(item.URL)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("↑/↓ navigate · [d] remove · [C] clear · [e] export · Esc/[b] back"))

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.statusMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
	}

	return docStyle.Render(b.String())
}
