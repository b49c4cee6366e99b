package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/auth"
	"github.com/eastsky4dk/youtubeQurator/infrastructure/logger"
	"github.com/eastsky4dk/youtubeQurator/internal/handler/server"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

type authURLGeneratedMsg struct{ url string }
type authSuccessMsg struct {
	token *oauth2.Token
	code  string
}
type authErrorMsg struct{ err error }

type loginState int

const (
	loginIdle loginState = iota
	loginAuthURLGenerated
	loginWaitingForCallback
	loginExchangingToken
	loginSuccess
	loginError
)

type LoginModel struct {
	parent           *AppModel
	state            loginState
	authURL          string
	errorMsg         string
	statusMsg        string
	csrfState        string
	httpServerCtx    context.Context
	httpServerCancel context.CancelFunc
}

func NewLoginModel(parent *AppModel) *LoginModel {
	return &LoginModel{
		parent:    parent,
		state:     loginIdle,
		statusMsg: "Press Enter to start the Google sign-in...",
	}
}

func (m *LoginModel) Init() tea.Cmd {
	// Reset state every time the screen is shown
	m.state = loginIdle
	m.errorMsg = ""
	m.statusMsg = "Press Enter to start the Google sign-in..."
	m.csrfState = fmt.Sprintf("st%d", time.Now().UnixNano())
	return nil
}

func generateAuthURLCmd(authService auth.AuthenticationService, state string) tea.Cmd {
	return func() tea.Msg {
		url := authService.GenerateAuthURL(state)
		return authURLGeneratedMsg{url: url}
	}
}

// waitForCallbackCmd runs the local callback server and blocks until the
// OAuth redirect arrives or the context ends.
func waitForCallbackCmd(
	ctx context.Context,
	callbackHandler server.CallbackHandler,
	expectedState string,
	addr string,
	callbackPath string,
	logger logger.Logger,
) tea.Cmd {
	return func() tea.Msg {
		resultChan := make(chan server.OAuthCallbackResult, 1)

		srvCtx, srvCancel := context.WithCancel(ctx)
		defer srvCancel()

		logger.Info(fmt.Sprintf("starting callback server on %s, expecting state %s", addr, expectedState))
		_ = callbackHandler.ListenAndServe(srvCtx, expectedState, addr, callbackPath, resultChan)

		logger.Info("waiting for OAuth callback result...")
		select {
		case res := <-resultChan:
			if res.Error != nil {
				return authErrorMsg{err: fmt.Errorf("callback error: %w", res.Error)}
			}
			if res.Code != "" {
				return authSuccessMsg{code: res.Code}
			}
			return authErrorMsg{err: fmt.Errorf("callback delivered neither a code nor an error")}
		case <-ctx.Done():
			logger.Info("callback cancelled by parent context")
			return authErrorMsg{err: fmt.Errorf("login cancelled: %w", ctx.Err())}
		}
	}
}

func exchangeCodeCmd(authService auth.AuthenticationService, code string, appCtx context.Context) tea.Cmd {
	return func() tea.Msg {
		token, err := authService.ExchangeCodeForToken(appCtx, code)
		if err != nil {
			return authErrorMsg{err: fmt.Errorf("token exchange failed: %w", err)}
		}
		return authSuccessMsg{token: token, code: ""}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, m.parent.send(showWelcomeMsg{})
		}
		if (m.state == loginIdle || m.state == loginError) && msg.Type == tea.KeyEnter {
			m.state = loginAuthURLGenerated
			m.statusMsg = "Generating authentication URL..."
			m.errorMsg = ""
			return m, generateAuthURLCmd(m.parent.authService, m.csrfState)
		}

	case authURLGeneratedMsg:
		m.authURL = msg.url
		m.statusMsg = "Open this link in your browser to authenticate:\n"
		go func() {
			if err := browser.OpenURL(m.authURL); err != nil {
				m.parent.logger.Error("could not open browser", err)
			}
		}()

		m.state = loginWaitingForCallback

		serverCtx, serverCancel := context.WithCancel(m.parent.appContext)
		m.httpServerCtx = serverCtx
		m.httpServerCancel = serverCancel

		return m, waitForCallbackCmd(
			m.httpServerCtx,
			m.parent.callbackHandler,
			m.csrfState,
			":8080",
			"/",
			m.parent.logger,
		)

	case authSuccessMsg:
		if m.httpServerCancel != nil {
			m.httpServerCancel()
			m.httpServerCancel = nil
			m.parent.logger.Info("callback server stopped")
		}

		// Phase 1: code received, exchange it for a token
		if msg.code != "" {
			m.state = loginExchangingToken
			m.statusMsg = "Code received. Exchanging it for a token..."
			return m, exchangeCodeCmd(m.parent.authService, msg.code, m.parent.appContext)
		}

		// Phase 2: token saved, login complete
		if msg.token != nil {
			m.state = loginSuccess
			m.statusMsg = "Signed in! Opening search..."
			m.errorMsg = ""
			if m.parent.resetCatalog != nil {
				m.parent.resetCatalog()
			}
			return m, tea.Sequence(
				tea.Tick(time.Millisecond*500, func(t time.Time) tea.Msg { return nil }),
				m.parent.send(showSearchMsg{}),
			)
		}

	case authErrorMsg:
		if m.httpServerCancel != nil {
			m.httpServerCancel()
			m.httpServerCancel = nil
			m.parent.logger.Info("callback server stopped after error")
		}
		m.state = loginError
		m.errorMsg = fmt.Sprintf("Sign-in failed: %v", msg.err)
		m.statusMsg = "Press Enter to try again."
		m.parent.logger.Error("OAuth sign-in failed", msg.err)
	}

	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Google Authentication"))
	b.WriteString("\n\n")

	if m.errorMsg != "" {
		b.WriteString(errorMessageStyle.Render(m.errorMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.statusMsg)
	b.WriteString("\n")

	if m.state == loginWaitingForCallback && m.authURL != "" {
		b.WriteString(urlStyle.Render(m.authURL))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("Waiting for authentication in the browser..."))
	}

	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("(Esc to go back, Ctrl+C to quit)"))
	return docStyle.Render(b.String())
}
