package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type searchDoneMsg struct{ err error }
type filtersStoredMsg struct {
	triggered bool
	err       error
}

// SearchModel is the query entry screen. Filter selections made here are
// stored on the session without fetching; once a search has completed the
// same keys (on the results screen) re-search automatically.
type SearchModel struct {
	parent    *AppModel
	input     textinput.Model
	spin      spinner.Model
	filters   domain.SearchFilters
	searching bool
	err       error
}

func NewSearchModel(parent *AppModel) *SearchModel {
	ti := textinput.New()
	ti.Placeholder = "tokyo travel 2024"
	ti.CharLimit = 200
	ti.Width = 48
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	snap := parent.session.Snapshot()
	ti.SetValue(snap.Filters.Query)

	return &SearchModel{
		parent:  parent,
		input:   ti,
		spin:    sp,
		filters: snap.Filters,
	}
}

func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) storeFilters() tea.Cmd {
	filters := m.filters
	return func() tea.Msg {
		triggered, err := m.parent.session.SetFilters(m.parent.appContext, filters)
		return filtersStoredMsg{triggered: triggered, err: err}
	}
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(showWelcomeMsg{})

		case tea.KeyCtrlO:
			m.filters.Order = (m.filters.Order + 1) % 4
			return m, m.storeFilters()

		case tea.KeyCtrlU:
			m.filters.Duration = (m.filters.Duration + 1) % 4
			return m, m.storeFilters()

		case tea.KeyCtrlT:
			m.filters.PublishedWithin = (m.filters.PublishedWithin + 1) % 5
			return m, m.storeFilters()

		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				m.err = domain.ErrEmptyQuery
				return m, nil
			}
			m.err = nil
			m.searching = true
			filters := m.filters.WithQuery(query)
			return m, tea.Batch(
				m.spin.Tick,
				func() tea.Msg {
					return searchDoneMsg{err: m.parent.session.Search(m.parent.appContext, filters)}
				},
			)
		}

	case searchDoneMsg:
		m.searching = false
		if msg.err != nil && !errors.Is(msg.err, domain.ErrEmptyQuery) {
			// The session keeps the error flag; the results screen renders it.
			m.parent.logger.Error("search failed", msg.err)
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.parent.send(showResultsMsg{})

	case filtersStoredMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case spinner.TickMsg:
		if m.searching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) filterBar() string {
	return filterBarStyle.Render(fmt.Sprintf(
		"order: %s   duration: %s   published: %s",
		m.filters.Order, m.filters.Duration, m.filters.PublishedWithin,
	))
}

func (m *SearchModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString("Type a query and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.spin.View())
		b.WriteString(" Searching…\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Ctrl+O order · Ctrl+U duration · Ctrl+T published window · Esc back"))
	return docStyle.Render(b.String())
}
