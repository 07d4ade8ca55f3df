package completion

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	loggerpkg "github.com/minhyannv/baby-claude/pkg/logger"
)

const providerOpenAI = "openai"

// OpenAIClient completes prompts against an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client  openai.Client
	logger  loggerpkg.Logger
	verbose bool
}

// NewOpenAI builds a client. An empty baseURL keeps the SDK default.
func NewOpenAI(apiKey, baseURL string, opts ...Option) *OpenAIClient {
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

	return &OpenAIClient{
		client:  openai.NewClient(reqOpts...),
		logger:  d.logger,
		verbose: d.verbose,
	}
}

// Complete sends req as a single user message and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", &RemoteServiceError{Provider: providerOpenAI, Err: err}
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	loggerpkg.Debug(c.verbose, c.logger, "completion request", map[string]any{
		"provider":   providerOpenAI,
		"model":      req.Model,
		"max_tokens": req.MaxTokens,
		"bytes":      len(req.Prompt),
	})
	start := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(req.Model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(req.MaxTokens)),
	})
	if err != nil {
		loggerpkg.Debug(c.verbose, c.logger, "completion failed", map[string]any{
			"provider": providerOpenAI,
			"error":    err.Error(),
			"elapsed":  time.Since(start).String(),
		})
		return "", &RemoteServiceError{Provider: providerOpenAI, Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &RemoteServiceError{Provider: providerOpenAI, Err: errors.New("empty completion choices")}
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", &RemoteServiceError{Provider: providerOpenAI, Err: errEmptyResponse}
	}
	loggerpkg.Debug(c.verbose, c.logger, "completion received", map[string]any{
		"provider":      providerOpenAI,
		"finish_reason": completion.Choices[0].FinishReason,
		"elapsed":       time.Since(start).String(),
	})
	return content, nil
}
