package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	MaxTokens    int    `yaml:"max_tokens"`
	SaveDir      string `yaml:"save_dir"`
	BaseURL      string `yaml:"base_url"`
	SystemPrompt string `yaml:"system_prompt"`
}

// ApplyFile overlays values from a YAML config file onto cfg.
// Credentials are never read from the file.
func ApplyFile(cfg Config, path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if strings.TrimSpace(fc.Provider) != "" {
		cfg.Provider = fc.Provider
	}
	if strings.TrimSpace(fc.Model) != "" {
		cfg.Model = fc.Model
	}
	if fc.MaxTokens != 0 {
		cfg.MaxTokens = fc.MaxTokens
	}
	if strings.TrimSpace(fc.SaveDir) != "" {
		cfg.SaveDir = fc.SaveDir
	}
	if strings.TrimSpace(fc.BaseURL) != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if strings.TrimSpace(fc.SystemPrompt) != "" {
		cfg.SystemPrompt = fc.SystemPrompt
	}
	return cfg, nil
}
