package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/eastsky4dk/youtubeQurator/internal/core/usecases"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

type fetchDoneMsg struct{ err error }

// ResultsModel renders the session's result sequence and drives the two
// advance strategies. All session mutations run inside commands; the view is
// rebuilt from a fresh snapshot after every completed fetch.
type ResultsModel struct {
	parent        *AppModel
	snap          usecases.Snapshot
	spin          spinner.Model
	cursor        int
	loading       bool
	statusMessage string
}

func NewResultsModel(parent *AppModel) *ResultsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &ResultsModel{parent: parent, spin: sp}
}

func (m *ResultsModel) Init() tea.Cmd {
	m.snap = m.parent.session.Snapshot()
	m.cursor = 0
	m.loading = false
	m.statusMessage = ""
	return nil
}

func (m *ResultsModel) startFetch(fetch func() error) tea.Cmd {
	m.loading = true
	m.statusMessage = ""
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			return fetchDoneMsg{err: fetch()}
		},
	)
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.loading = false
		m.snap = m.parent.session.Snapshot()
		if m.snap.ScrollReset {
			m.cursor = 0
		}
		if m.cursor >= len(m.snap.Items) && len(m.snap.Items) > 0 {
			m.cursor = len(m.snap.Items) - 1
		}
		if msg.err != nil {
			m.parent.logger.Error("fetch failed", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(showSearchMsg{})
		case tea.KeyCtrlO:
			f := m.snap.Filters
			f.Order = (f.Order + 1) % 4
			return m, m.setFilters(f)
		case tea.KeyCtrlU:
			f := m.snap.Filters
			f.Duration = (f.Duration + 1) % 4
			return m, m.setFilters(f)
		case tea.KeyCtrlT:
			f := m.snap.Filters
			f.PublishedWithin = (f.PublishedWithin + 1) % 5
			return m, m.setFilters(f)
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.snap.Items)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			return m, m.openSelected()
		}

		switch msg.String() {
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j":
			if m.cursor < len(m.snap.Items)-1 {
				m.cursor++
			}
		case "n":
			// Append the next page below the current results.
			if m.snap.HasMore {
				return m, m.startFetch(func() error {
					return m.parent.session.AdvanceAppend(m.parent.appContext)
				})
			}
			m.statusMessage = "No further pages."
		case "r":
			// Replace the visible results with the next page.
			if m.snap.HasMore {
				return m, m.startFetch(func() error {
					return m.parent.session.AdvanceReplace(m.parent.appContext)
				})
			}
			m.statusMessage = "No further pages."
		case "a":
			if item, ok := m.selected(); ok {
				if m.parent.curator.Add(item) {
					m.statusMessage = fmt.Sprintf("Added %q to the shortlist.", item.Title)
				} else {
					m.statusMessage = "Already on the shortlist."
				}
			}
		case "c":
			return m, m.parent.send(showCuratedMsg{})
		case "o":
			return m, m.openSelected()
		case "/":
			return m, m.parent.send(showSearchMsg{})
		}
	}

	return m, nil
}

func (m *ResultsModel) setFilters(f domain.SearchFilters) tea.Cmd {
	return m.startFetch(func() error {
		_, err := m.parent.session.SetFilters(m.parent.appContext, f)
		return err
	})
}

func (m *ResultsModel) selected() (domain.ResultItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Items) {
		return domain.ResultItem{}, false
	}
	return m.snap.Items[m.cursor], true
}

func (m *ResultsModel) openSelected() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}
	url := item.URL
	go func() {
		if err := browser.OpenURL(url); err != nil {
			m.parent.logger.Error("could not open browser", err)
		}
	}()
	m.statusMessage = fmt.Sprintf("Opening %s", url)
	return nil
}

func metaLine(item domain.ResultItem) string {
	parts := []string{item.ChannelTitle}
	if item.Stats != nil {
		parts = append(parts, fmt.Sprintf("%d views", item.Stats.ViewCount))
		if item.Stats.Duration > 0 {
			parts = append(parts, item.Stats.Duration.Round(time.Second).String())
		}
	} else {
		parts = append(parts, "details unavailable")
	}
	if !item.PublishedAt.IsZero() {
		parts = append(parts, item.PublishedAt.Format("2006-01-02"))
	}
	return strings.Join(parts, " · ")
}

func (m *ResultsModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Results for %q", m.snap.Filters.Query)
	if m.snap.TotalEstimate > 0 {
		header += fmt.Sprintf(" — about %d", m.snap.TotalEstimate)
	}
	b.WriteString(listHeaderStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(filterBarStyle.Render(fmt.Sprintf(
		"order: %s   duration: %s   published: %s",
		m.snap.Filters.Order, m.snap.Filters.Duration, m.snap.Filters.PublishedWithin,
	)))
	b.WriteString("\n")

	if m.snap.FetchErr != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Last fetch failed: %v", m.snap.FetchErr)))
		b.WriteString("\n\n")
	}
	if m.snap.Degraded {
		b.WriteString(warningMessageStyle.Render("Some items are missing statistics."))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" Fetching…\n\n")
	}

	if len(m.snap.Items) == 0 && !m.loading {
		b.WriteString("No results.\n")
	}

	for i, item := range m.snap.Items {
		title := item.Title
		if m.parent.curator.Contains(item.ID) {
			title = curatedMarkStyle.Render("★ ") + title
		}
		if m.cursor == i {
			b.WriteString(selectedListItemStyle.Render(title))
		} else {
			b.WriteString(listItemStyle.Render(title))
		}
		b.WriteString("\n")
		b.WriteString(itemMetaStyle.Render(metaLine(item)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.snap.HasMore {
		b.WriteString(promptStyle.Render("[n] more (append) · [r] next page (replace)"))
		b.WriteString("\n")
	}
	b.WriteString(promptStyle.Render("↑/↓ navigate · [a] shortlist · [c] curated · Enter/[o] open · [/] new search"))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Ctrl+O order · Ctrl+U duration · Ctrl+T published window · Esc back"))

	if m.statusMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
	}

	return docStyle.Render(b.String())
}
