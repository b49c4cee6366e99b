package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

const envAPIKey = "YOUTUBE_API_KEY"

type credentialStoreImpl struct {
	KeyFilePath   string
	TokenFilePath string
}

// CredentialStore holds the two credential shapes the catalog API accepts: a
// plain API key, or an OAuth token obtained through the login flow. Keys and
// tokens live in local JSON files and are never logged.
type CredentialStore interface {
	LoadAPIKey() (string, error)
	SaveAPIKey(key string) error
	LoadToken() (*oauth2.Token, error)
	SaveToken(token *oauth2.Token) error
	DeleteLocalToken() error
}

func NewCredentialStore(keyFilePath, tokenFilePath string) CredentialStore {
	if keyFilePath == "" {
		keyFilePath = "api_key.json"
	}
	if tokenFilePath == "" {
		tokenFilePath = "token.json"
	}

	return &credentialStoreImpl{
		KeyFilePath:   keyFilePath,
		TokenFilePath: tokenFilePath,
	}
}

type apiKeyFile struct {
	APIKey string `json:"api_key"`
}

// LoadAPIKey prefers the environment variable over the key file, so a .env
// entry wins without touching the stored key.
func (c *credentialStoreImpl) LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		return key, nil
	}

	file, err := os.Open(c.KeyFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open API key file %s: %w", c.KeyFilePath, err)
	}
	defer file.Close()

	var stored apiKeyFile
	if err := json.NewDecoder(file).Decode(&stored); err != nil {
		return "", fmt.Errorf("failed to decode API key file %s: %w", c.KeyFilePath, err)
	}

	if strings.TrimSpace(stored.APIKey) == "" {
		return "", fmt.Errorf("API key file %s contains no key", c.KeyFilePath)
	}

	return stored.APIKey, nil
}

func (c *credentialStoreImpl) SaveAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("refusing to save an empty API key")
	}

	file, err := os.OpenFile(c.KeyFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open/create API key file %s: %w", c.KeyFilePath, err)
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(apiKeyFile{APIKey: key})
}

func (c *credentialStoreImpl) LoadToken() (*oauth2.Token, error) {
	file, err := os.Open(c.TokenFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file %s: %w", c.TokenFilePath, err)
	}
	defer file.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(file).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token from %s: %w", c.TokenFilePath, err)
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("invalid token: neither AccessToken nor RefreshToken present")
	}

	return token, nil
}

func (c *credentialStoreImpl) SaveToken(token *oauth2.Token) error {
	file, err := os.OpenFile(c.TokenFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open/create token file %s: %w", c.TokenFilePath, err)
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(token)
}

func (c *credentialStoreImpl) DeleteLocalToken() error {
	if err := os.Remove(c.TokenFilePath); err != nil {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
