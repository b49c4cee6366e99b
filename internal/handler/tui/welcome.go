package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "k", "enter":
			return m, m.parent.send(showKeyEntryMsg{})
		case "l":
			if m.parent.authService != nil {
				return m, m.parent.send(showLoginMsg{})
			}
		case "esc", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("▶ YouTube Qurator"))
	b.WriteString("\n\n")
	b.WriteString("Search the catalog, page through results and curate a shortlist for export.\n\n")
	b.WriteString("A credential is needed before the first search:\n\n")
	b.WriteString(listItemStyle.Render("[k] enter a YouTube Data API key"))
	b.WriteString("\n")
	if m.parent.authService != nil {
		b.WriteString(listItemStyle.Render("[l] sign in with Google instead"))
		b.WriteString("\n")
	} else {
		b.WriteString(promptStyle.Render("  (Google sign-in unavailable: no client secret configured)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("(Ctrl+C or q to quit)"))

	return docStyle.Render(b.String())
}
