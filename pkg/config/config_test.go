package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, 4000, cfg.MaxTokens)
	assert.Equal(t, ".", cfg.SaveDir)
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	cfg := Normalize(Config{
		Provider: "  OpenAI ",
		APIKey:   " key ",
		Model:    "   ",
	})
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultSaveDir, cfg.SaveDir)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := Normalize(DefaultConfig())
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY is not set")

	cfg.Provider = ProviderOpenAI
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is not set")
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := Normalize(DefaultConfig())
	cfg.APIKey = "test-key"
	cfg.Provider = "gemini"
	require.Error(t, Validate(cfg))
}

func TestValidateRejectsNegativeMaxTokens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.MaxTokens = -1
	require.Error(t, Validate(Normalize(cfg)))
}

func TestApplyEnvOverlaysValues(t *testing.T) {
	cfg, err := ApplyEnv(DefaultConfig(), envMap(map[string]string{
		"ANTHROPIC_API_KEY": " secret ",
		"CLAUDE_MODEL":      "claude-test",
		"CLAUDE_MAX_TOKENS": "128",
		"CLAUDE_SAVE_DIR":   "/tmp/chats",
	}))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "claude-test", cfg.Model)
	assert.Equal(t, 128, cfg.MaxTokens)
	assert.Equal(t, "/tmp/chats", cfg.SaveDir)
}

func TestApplyEnvReadsProviderSpecificKey(t *testing.T) {
	cfg, err := ApplyEnv(DefaultConfig(), envMap(map[string]string{
		"CLAUDE_PROVIDER":   "openai",
		"ANTHROPIC_API_KEY": "anthropic-key",
		"OPENAI_API_KEY":    "openai-key",
	}))
	require.NoError(t, err)
	assert.Equal(t, "openai-key", cfg.APIKey)
}

func TestApplyEnvRejectsBadMaxTokens(t *testing.T) {
	_, err := ApplyEnv(DefaultConfig(), envMap(map[string]string{
		"CLAUDE_MAX_TOKENS": "lots",
	}))
	require.Error(t, err)
}

func TestApplyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baby-claude.yaml")
	content := `provider: anthropic
model: claude-from-file
max_tokens: 256
save_dir: transcripts
system_prompt: Be brief.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := ApplyFile(DefaultConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, "claude-from-file", cfg.Model)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.Equal(t, "transcripts", cfg.SaveDir)
	assert.Equal(t, "Be brief.", cfg.SystemPrompt)
	assert.Empty(t, cfg.APIKey)
}

func TestApplyFileEmptyPathIsNoop(t *testing.T) {
	cfg, err := ApplyFile(DefaultConfig(), "  ")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyFileMissing(t *testing.T) {
	_, err := ApplyFile(DefaultConfig(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
