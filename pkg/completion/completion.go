// Package completion wraps the hosted model APIs behind a single blocking call.
package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	configpkg "github.com/minhyannv/baby-claude/pkg/config"
	loggerpkg "github.com/minhyannv/baby-claude/pkg/logger"
)

// Request is one stateless completion request. Prior turns are never attached.
type Request struct {
	Prompt    string
	Model     string
	MaxTokens int
	System    string
}

// Completer sends a prompt to a remote model and returns its text reply.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// RemoteServiceError reports a failed completion call: transport, timeout,
// cancellation, or an error payload from the service.
type RemoteServiceError struct {
	Provider string
	Err      error
}

func (e *RemoteServiceError) Error() string {
	if e.Provider == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

var errEmptyResponse = errors.New("empty response content")

// Option configures optional dependencies for provider clients.
type Option func(*deps)

type deps struct {
	logger     loggerpkg.Logger
	verbose    bool
	httpClient *http.Client
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger, verbose bool) Option {
	return func(d *deps) {
		d.logger = l
		d.verbose = verbose
	}
}

// WithHTTPClient overrides the HTTP client used by the provider SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(d *deps) {
		d.httpClient = c
	}
}

func resolveDeps(opts []Option) deps {
	d := deps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// New builds the Completer for cfg.Provider.
func New(cfg configpkg.Config, opts ...Option) (Completer, error) {
	cfg = configpkg.Normalize(cfg)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s is not set", configpkg.APIKeyEnv(cfg.Provider))
	}

	switch cfg.Provider {
	case configpkg.ProviderAnthropic:
		return NewAnthropic(cfg.APIKey, cfg.BaseURL, opts...), nil
	case configpkg.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, opts...), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func validateRequest(req Request) error {
	if req.Prompt == "" {
		return errors.New("prompt is required")
	}
	if req.Model == "" {
		return errors.New("model is required")
	}
	if req.MaxTokens <= 0 {
		return errors.New("max tokens must be positive")
	}
	return nil
}
