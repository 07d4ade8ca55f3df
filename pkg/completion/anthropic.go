package completion

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	loggerpkg "github.com/minhyannv/baby-claude/pkg/logger"
)

const providerAnthropic = "anthropic"

// AnthropicClient completes prompts with the Anthropic Messages API.
type AnthropicClient struct {
	client  anthropic.Client
	logger  loggerpkg.Logger
	verbose bool
}

// NewAnthropic builds a client. An empty baseURL keeps the SDK default.
func NewAnthropic(apiKey, baseURL string, opts ...Option) *AnthropicClient {
	d := resolveDeps(opts)

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	if d.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(d.httpClient))
	}

	return &AnthropicClient{
		client:  anthropic.NewClient(reqOpts...),
		logger:  d.logger,
		verbose: d.verbose,
	}
}

// Complete sends req as a single user message and joins the text blocks of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", &RemoteServiceError{Provider: providerAnthropic, Err: err}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	loggerpkg.Debug(c.verbose, c.logger, "completion request", map[string]any{
		"provider":   providerAnthropic,
		"model":      req.Model,
		"max_tokens": req.MaxTokens,
		"bytes":      len(req.Prompt),
	})
	start := time.Now()
	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		loggerpkg.Debug(c.verbose, c.logger, "completion failed", map[string]any{
			"provider": providerAnthropic,
			"error":    err.Error(),
			"elapsed":  time.Since(start).String(),
		})
		return "", &RemoteServiceError{Provider: providerAnthropic, Err: err}
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &RemoteServiceError{Provider: providerAnthropic, Err: errEmptyResponse}
	}

	loggerpkg.Debug(c.verbose, c.logger, "completion received", map[string]any{
		"provider":      providerAnthropic,
		"stop_reason":   string(message.StopReason),
		"output_tokens": message.Usage.OutputTokens,
		"elapsed":       time.Since(start).String(),
	})
	return sb.String(), nil
}
