package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	DefaultModel     = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens = 4000
	DefaultSaveDir   = "."
)

// Config holds all runtime configuration for a chat session.
type Config struct {
	Provider     string
	APIKey       string
	BaseURL      string
	Model        string
	MaxTokens    int
	SaveDir      string
	SystemPrompt string

	Plain   bool
	Verbose bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderAnthropic,
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		SaveDir:   DefaultSaveDir,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.SaveDir = strings.TrimSpace(cfg.SaveDir)
	cfg.SystemPrompt = strings.TrimSpace(cfg.SystemPrompt)

	if cfg.Provider == "" {
		cfg.Provider = ProviderAnthropic
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SaveDir == "" {
		cfg.SaveDir = DefaultSaveDir
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return cfg
}

// Validate reports configuration that would make every completion request fail.
func Validate(cfg Config) error {
	switch cfg.Provider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q (want %q or %q)", cfg.Provider, ProviderAnthropic, ProviderOpenAI)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%s is not set", APIKeyEnv(cfg.Provider))
	}
	if cfg.MaxTokens <= 0 {
		return errors.New("max tokens must be positive")
	}
	return nil
}

// APIKeyEnv names the environment variable holding the credential for provider.
func APIKeyEnv(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "ANTHROPIC_API_KEY"
}

// ApplyEnv overlays values from the environment onto cfg.
// Unset variables leave the corresponding field untouched.
func ApplyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	if v := lookup("CLAUDE_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := lookup("CLAUDE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := lookup("CLAUDE_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse CLAUDE_MAX_TOKENS: %w", err)
		}
		cfg.MaxTokens = n
	}
	if v := lookup("CLAUDE_SAVE_DIR"); v != "" {
		cfg.SaveDir = v
	}
	if v := lookup("CLAUDE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := lookup("CLAUDE_SYSTEM_PROMPT"); v != "" {
		cfg.SystemPrompt = v
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if v := lookup(APIKeyEnv(provider)); v != "" {
		cfg.APIKey = v
	}
	return cfg, nil
}
