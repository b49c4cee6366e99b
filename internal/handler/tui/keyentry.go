package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type keySavedMsg struct{}
type keySaveErrorMsg struct{ err error }

// KeyEntryModel prompts for a YouTube Data API key and persists it through
// the credential store.
type KeyEntryModel struct {
	parent *AppModel
	input  textinput.Model
	err    error
}

func NewKeyEntryModel(parent *AppModel) *KeyEntryModel {
	ti := textinput.New()
	ti.Placeholder = "AIza..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 128
	ti.Width = 48
	ti.Focus()

	return &KeyEntryModel{
		parent: parent,
		input:  ti,
	}
}

func (m *KeyEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *KeyEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(showWelcomeMsg{})
		case tea.KeyEnter:
			key := strings.TrimSpace(m.input.Value())
			if key == "" {
				m.err = fmt.Errorf("API key cannot be empty")
				return m, nil
			}
			m.err = nil
			return m, func() tea.Msg {
				if err := m.parent.credStore.SaveAPIKey(key); err != nil {
					return keySaveErrorMsg{err: err}
				}
				return keySavedMsg{}
			}
		}

	case keySavedMsg:
		m.parent.logger.Info("API key saved")
		if m.parent.resetCatalog != nil {
			m.parent.resetCatalog()
		}
		return m, m.parent.send(showSearchMsg{})

	case keySaveErrorMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *KeyEntryModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("API Key"))
	b.WriteString("\n\n")
	b.WriteString("Paste your YouTube Data API key and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(promptStyle.Render("The key is stored locally and only sent to the catalog API. Esc to go back."))
	return docStyle.Render(b.String())
}
