// Package main is the baby-claude terminal chat client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minhyannv/baby-claude/pkg/completion"
	configpkg "github.com/minhyannv/baby-claude/pkg/config"
	loggerpkg "github.com/minhyannv/baby-claude/pkg/logger"
	"github.com/minhyannv/baby-claude/pkg/session"
	"github.com/minhyannv/baby-claude/pkg/ui"
)

// appDeps are the process-level collaborators, swapped out in tests.
type appDeps struct {
	getenv       func(string) string
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	newCompleter func(configpkg.Config, ...completion.Option) (completion.Completer, error)
}

func defaultDeps() appDeps {
	return appDeps{
		getenv:       os.Getenv,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		newCompleter: completion.New,
	}
}

// main is the program entry point.
func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := defaultDeps()
	if err := newRootCmd(deps).ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(deps.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(deps appDeps) *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:   "baby-claude [prompt words...]",
		Short: "Baby Claude - your personal AI assistant in the terminal",
		Long: `Chat with Claude from the terminal.

Run without arguments to start an interactive session (type 'help' for
commands). Any arguments are joined into a single question, answered once.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, flags, args, deps)
		},
	}
	// Everything after the first prompt word belongs to the prompt.
	cmd.Flags().SetInterspersed(false)
	bindFlags(cmd, &flags)
	cmd.SetIn(deps.stdin)
	cmd.SetOut(deps.stdout)
	cmd.SetErr(deps.stderr)
	return cmd
}

func runChat(cmd *cobra.Command, flags cliFlags, args []string, deps appDeps) error {
	cfg, err := resolveConfig(cmd, flags, deps.getenv)
	if err != nil {
		return err
	}

	appLogger := loggerpkg.NewWriterLogger(deps.stderr, cfg.Verbose)
	loggerpkg.Debug(cfg.Verbose, appLogger, "config resolved", map[string]any{
		"provider":   cfg.Provider,
		"model":      cfg.Model,
		"max_tokens": cfg.MaxTokens,
		"save_dir":   cfg.SaveDir,
		"base_url":   cfg.BaseURL,
	})

	completer, err := deps.newCompleter(cfg, completion.WithLogger(appLogger, cfg.Verbose))
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(deps.stdout, cfg.Plain)
	sess, err := session.New(completer, cfg.Model, cfg.MaxTokens,
		session.WithLogger(appLogger, cfg.Verbose),
		session.WithPrinter(printer),
		session.WithSaveDir(cfg.SaveDir),
		session.WithSystemPrompt(cfg.SystemPrompt),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) > 0 {
		return sess.OneShot(ctx, args)
	}
	if err := sess.Run(ctx, deps.stdin); err != nil {
		printer.Failure(err)
		return err
	}
	return nil
}
