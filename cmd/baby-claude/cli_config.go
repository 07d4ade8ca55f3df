package main

import (
	"strings"

	"github.com/spf13/cobra"

	configpkg "github.com/minhyannv/baby-claude/pkg/config"
)

const (
	flagConfig    = "config"
	flagProvider  = "provider"
	flagModel     = "model"
	flagMaxTokens = "max-tokens"
	flagSaveDir   = "save-dir"
	flagSystem    = "system"
	flagPlain     = "plain"
	flagVerbose   = "verbose"
)

// cliFlags holds the raw command-line values before they are merged.
type cliFlags struct {
	configFile string
	provider   string
	model      string
	maxTokens  int
	saveDir    string
	system     string
	plain      bool
	verbose    bool
}

func bindFlags(cmd *cobra.Command, f *cliFlags) {
	defaults := configpkg.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&f.configFile, flagConfig, "", "Optional YAML config file")
	flags.StringVar(&f.provider, flagProvider, defaults.Provider, "Model provider: anthropic or openai")
	flags.StringVar(&f.model, flagModel, defaults.Model, "Model identifier")
	flags.IntVar(&f.maxTokens, flagMaxTokens, defaults.MaxTokens, "Maximum response tokens")
	flags.StringVar(&f.saveDir, flagSaveDir, defaults.SaveDir, "Directory for saved conversations")
	flags.StringVar(&f.system, flagSystem, "", "System prompt sent with every request")
	flags.BoolVar(&f.plain, flagPlain, false, "Disable colours and markdown rendering")
	flags.BoolVarP(&f.verbose, flagVerbose, "v", false, "Verbose debug logging on stderr")
}

// resolveConfig merges defaults, the config file, the environment, and the
// flags that were set explicitly, in that order, then validates the result.
func resolveConfig(cmd *cobra.Command, f cliFlags, getenv func(string) string) (configpkg.Config, error) {
	cfg, err := configpkg.ApplyFile(configpkg.DefaultConfig(), f.configFile)
	if err != nil {
		return configpkg.Config{}, err
	}

	cfg, err = configpkg.ApplyEnv(cfg, getenv)
	if err != nil {
		return configpkg.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed(flagProvider) {
		// The credential variable follows the provider.
		cfg.Provider = strings.ToLower(strings.TrimSpace(f.provider))
		cfg.APIKey = getenv(configpkg.APIKeyEnv(cfg.Provider))
	}
	if changed(flagModel) {
		cfg.Model = f.model
	}
	if changed(flagMaxTokens) {
		cfg.MaxTokens = f.maxTokens
	}
	if changed(flagSaveDir) {
		cfg.SaveDir = f.saveDir
	}
	if changed(flagSystem) {
		cfg.SystemPrompt = f.system
	}
	cfg.Plain = f.plain
	cfg.Verbose = f.verbose

	cfg = configpkg.Normalize(cfg)
	if err := configpkg.Validate(cfg); err != nil {
		return configpkg.Config{}, err
	}
	return cfg, nil
}
