package tui

import (
	"context"
	"fmt"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/auth"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/credentials"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/logger"
	"github.com/eastsky4dk/youtubeQurator/internal/core/usecases"
	"github.com/eastsky4dk/youtubeQurator/internal/handler/server"

	tea "github.com/charmbracelet/bubbletea"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewKeyEntry
	viewLogin
	viewSearch
	viewResults
	viewCurated
)

type AppModel struct {
	// Injected dependencies
	authService     auth.AuthenticationService // nil when no client secret is configured
	callbackHandler server.CallbackHandler
	session         *usecases.Session
	curator         usecases.Curator
	credStore       credentials.CredentialStore
	resetCatalog    func() // drops the cached upstream service after a credential change
	logger          logger.Logger

	welcomeModel  *WelcomeModel
	keyEntryModel *KeyEntryModel
	loginModel    *LoginModel
	searchModel   *SearchModel
	resultsModel  *ResultsModel
	curatedModel  *CuratedModel

	currentView currentView
	err         error

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	authSvc auth.AuthenticationService,
	cbHandler server.CallbackHandler,
	session *usecases.Session,
	curator usecases.Curator,
	credStore credentials.CredentialStore,
	resetCatalog func(),
	log logger.Logger,
) *AppModel {
	// Root context, cancelled on quit
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		authService:     authSvc,
		callbackHandler: cbHandler,
		session:         session,
		curator:         curator,
		credStore:       credStore,
		resetCatalog:    resetCatalog,
		logger:          log,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.keyEntryModel = NewKeyEntryModel(m)
	m.loginModel = NewLoginModel(m)
	m.searchModel = NewSearchModel(m)
	m.resultsModel = NewResultsModel(m)
	m.curatedModel = NewCuratedModel(m)

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	// Skip the credential screens when a usable credential already exists.
	return func() tea.Msg {
		if _, err := m.credStore.LoadAPIKey(); err == nil {
			m.logger.Info("API key found, going straight to search")
			return showSearchMsg{}
		}
		if _, err := m.credStore.LoadToken(); err == nil {
			m.logger.Info("stored OAuth token found, going straight to search")
			return showSearchMsg{}
		}
		m.logger.Info("no credential configured, showing welcome")
		return showWelcomeMsg{}
	}
}

// Navigation messages used by the sub-models
type showWelcomeMsg struct{}
type showKeyEntryMsg struct{}
type showLoginMsg struct{}
type showSearchMsg struct{}
type showResultsMsg struct{}
type showCuratedMsg struct{}

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.logger.Info("Ctrl+C pressed, shutting down")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.searchModel != nil {
			updated, _ := m.searchModel.Update(msg)
			if casted, ok := updated.(*SearchModel); ok {
				m.searchModel = casted
			}
		}
		if m.resultsModel != nil {
			updated, _ := m.resultsModel.Update(msg)
			if casted, ok := updated.(*ResultsModel); ok {
				m.resultsModel = casted
			}
		}
		if m.curatedModel != nil {
			updated, _ := m.curatedModel.Update(msg)
			if casted, ok := updated.(*CuratedModel); ok {
				m.curatedModel = casted
			}
		}
	}

	// Navigation
	switch msg.(type) {
	case showWelcomeMsg:
		m.currentView = viewWelcome
		m.err = nil
		cmd = m.welcomeModel.Init()

	case showKeyEntryMsg:
		m.currentView = viewKeyEntry
		m.err = nil
		km := NewKeyEntryModel(m)
		m.keyEntryModel = km
		cmd = km.Init()

	case showLoginMsg:
		m.currentView = viewLogin
		m.err = nil
		cmd = m.loginModel.Init()

	case showSearchMsg:
		m.currentView = viewSearch
		m.err = nil
		sm := NewSearchModel(m)
		m.searchModel = sm
		cmd = sm.Init()

	case showResultsMsg:
		m.currentView = viewResults
		m.err = nil
		cmd = m.resultsModel.Init()

	case showCuratedMsg:
		m.currentView = viewCurated
		m.err = nil
		cm := NewCuratedModel(m)
		m.curatedModel = cm
		cmd = cm.Init()
	}

	cmds = append(cmds, cmd)

	// Delegate to the sub-model owning the current screen
	var currentViewCmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		if m.welcomeModel != nil {
			updated, cmd := m.welcomeModel.Update(msg)
			if casted, ok := updated.(*WelcomeModel); ok {
				m.welcomeModel = casted
			}
			currentViewCmd = cmd
		}

	case viewKeyEntry:
		if m.keyEntryModel != nil {
			updated, cmd := m.keyEntryModel.Update(msg)
			if casted, ok := updated.(*KeyEntryModel); ok {
				m.keyEntryModel = casted
			}
			currentViewCmd = cmd
		}

	case viewLogin:
		if m.loginModel != nil {
			updated, cmd := m.loginModel.Update(msg)
			if casted, ok := updated.(*LoginModel); ok {
				m.loginModel = casted
			}
			currentViewCmd = cmd
		}

	case viewSearch:
		if m.searchModel != nil {
			updated, cmd := m.searchModel.Update(msg)
			if casted, ok := updated.(*SearchModel); ok {
				m.searchModel = casted
			}
			currentViewCmd = cmd
		}

	case viewResults:
		if m.resultsModel != nil {
			updated, cmd := m.resultsModel.Update(msg)
			if casted, ok := updated.(*ResultsModel); ok {
				m.resultsModel = casted
			}
			currentViewCmd = cmd
		}

	case viewCurated:
		if m.curatedModel != nil {
			updated, cmd := m.curatedModel.Update(msg)
			if casted, ok := updated.(*CuratedModel); ok {
				m.curatedModel = casted
			}
			currentViewCmd = cmd
		}
	}

	cmds = append(cmds, currentViewCmd)
	return m, tea.Batch(cmds...)
}

func (m *AppModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("An error occurred: %v\n\n(Ctrl+C to quit)", m.err)
	}

	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewKeyEntry:
		return m.keyEntryModel.View()
	case viewLogin:
		return m.loginModel.View()
	case viewSearch:
		return m.searchModel.View()
	case viewResults:
		return m.resultsModel.View()
	case viewCurated:
		return m.curatedModel.View()
	default:
		return "Unknown view…"
	}
}
