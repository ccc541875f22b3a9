package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "recruitin"
	apiKeyAccount  = "recruitin:gemini-api-key"
	apiKeyEnv      = "GEMINI_API_KEY"
)

// APIKey resolves the generation API key: environment first, then the OS
// keyring. Startup treats an empty result as fatal.
func APIKey() (string, error) {
	if v := strings.TrimSpace(os.Getenv(apiKeyEnv)); v != "" {
		return v, nil
	}

	pw, err := keyring.Get(KeyringService, apiKeyAccount)
	if err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}

	return "", errors.New("API key not found (set GEMINI_API_KEY or store it in the keychain)")
}

func SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, apiKeyAccount, key)
}

func DeleteAPIKey() error {
	return keyring.Delete(KeyringService, apiKeyAccount)
}
