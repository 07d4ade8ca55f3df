package session

import (
	"time"

	loggerpkg "github.com/minhyannv/baby-claude/pkg/logger"
	"github.com/minhyannv/baby-claude/pkg/ui"
)

// Option configures optional runtime dependencies for a Session.
type Option func(*sessionDeps)

type sessionDeps struct {
	logger       loggerpkg.Logger
	verbose      bool
	printer      *ui.Printer
	now          func() time.Time
	saveDir      string
	systemPrompt string
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger, verbose bool) Option {
	return func(d *sessionDeps) {
		d.logger = l
		d.verbose = verbose
	}
}

// WithPrinter sets where session output goes.
func WithPrinter(p *ui.Printer) Option {
	return func(d *sessionDeps) {
		d.printer = p
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *sessionDeps) {
		d.now = now
	}
}

// WithSaveDir sets the directory used by the save command.
func WithSaveDir(dir string) Option {
	return func(d *sessionDeps) {
		d.saveDir = dir
	}
}

// WithSystemPrompt attaches a system prompt to every completion request.
func WithSystemPrompt(prompt string) Option {
	return func(d *sessionDeps) {
		d.systemPrompt = prompt
	}
}
