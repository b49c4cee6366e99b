package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/eastsky4dk/youtubeQurator/infrastructure/credentials"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type authenticationServiceImpl struct {
	clientSecretFilePath string
	defaultRedirectURL   string
	oauthConfig          *oauth2.Config
	credStore            credentials.CredentialStore
}

// AuthenticationService drives the optional OAuth credential path: auth URL
// generation, code exchange and refresh against the stored token. The search
// calls themselves only need a token source.
type AuthenticationService interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, *oauth2.Token, error)
	GenerateAuthURL(state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	RevokeToken(tokenToRevoke string) error
}

func NewAuthenticationService(scopes []string, clientSecretFilePath, redirectURL string, credStore credentials.CredentialStore) (AuthenticationService, error) {
	config, err := loadConfig(scopes, clientSecretFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load client configuration: %w", err)
	}

	config.RedirectURL = redirectURL

	return &authenticationServiceImpl{
		clientSecretFilePath: clientSecretFilePath,
		defaultRedirectURL:   redirectURL,
		credStore:            credStore,
		oauthConfig:          config,
	}, nil
}

func loadConfig(scopes []string, clientSecretFilePath string) (*oauth2.Config, error) {
	b, err := os.ReadFile(clientSecretFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file (%s): %w", clientSecretFilePath, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client configuration from JSON: %w", err)
	}

	return config, nil
}

// TokenSource loads the stored token, refreshes it if needed and persists the
// refreshed token. A token that cannot be refreshed is deleted so the next
// run prompts for login again.
func (a *authenticationServiceImpl) TokenSource(ctx context.Context) (oauth2.TokenSource, *oauth2.Token, error) {
	token, err := a.credStore.LoadToken()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load token: %w", err)
	}

	tokenSource := a.oauthConfig.TokenSource(ctx, token)
	refreshedToken, err := tokenSource.Token()
	if err != nil {
		_ = a.credStore.DeleteLocalToken()
		return nil, nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if refreshedToken.AccessToken != token.AccessToken || (refreshedToken.RefreshToken != "" && refreshedToken.RefreshToken != token.RefreshToken) {
		if errSave := a.credStore.SaveToken(refreshedToken); errSave != nil {
			return nil, nil, fmt.Errorf("failed to save refreshed token: %w", errSave)
		}
	}

	return tokenSource, refreshedToken, nil
}

func (a *authenticationServiceImpl) GenerateAuthURL(state string) string {
	return a.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (a *authenticationServiceImpl) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := a.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code for token: %w", err)
	}

	if err = a.credStore.SaveToken(token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	return token, nil
}

func (a *authenticationServiceImpl) RevokeToken(tokenToRevoke string) error {
	if tokenToRevoke == "" {
		return nil
	}

	revokeURL := "https://oauth2.googleapis.com/revoke"

	data := url.Values{}
	data.Set("token", tokenToRevoke)

	resp, err := http.PostForm(revokeURL, data)
	if err != nil {
		return fmt.Errorf("failed to send token revocation request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to revoke token, status: %s", resp.Status)
	}

	return nil
}
