// Package llm is a small multi-provider text completion client used by the
// writing assistant.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorewood/folio/internal/output"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-flash"

// Provider represents an LLM provider.
type Provider string

// Supported LLM providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderLocal     Provider = "local"
)

// Request represents an LLM completion request.
type Request struct {
	System      string  // System prompt
	Prompt      string  // User prompt
	Temperature float64 // 0 uses the provider default
	MaxTokens   int     // 0 uses the provider default
	JSON        bool    // ask for a JSON response where the provider supports it
}

// Response represents an LLM completion response.
type Response struct {
	Content string
	Model   string
}

// HTTPDoer defines the HTTP operations required by Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a provider-agnostic LLM client.
type Client struct {
	provider   Provider
	model      string
	apiKey     string
	httpClient HTTPDoer
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.httpClient = doer }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for model. The model may carry a provider prefix
// ("gemini-flash", "claude-haiku"); otherwise the provider is inferred.
// An empty model selects DefaultModel.
func New(model string, provider Provider, opts ...Option) (*Client, error) {
	provider, model = Resolve(model, provider)

	apiKey, err := getAPIKey(provider)
	if err != nil {
		return nil, err
	}

	c := &Client{
		provider:   provider,
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Provider returns the provider the client talks to.
func (c *Client) Provider() Provider { return c.provider }

// Model returns the resolved model name.
func (c *Client) Model() string { return c.model }

// Complete generates a completion for the given request.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	var (
		resp *Response
		err  error
	)
	switch c.provider {
	case ProviderAnthropic:
		resp, err = c.completeAnthropic(ctx, req)
	case ProviderOpenAI:
		resp, err = c.completeChat(ctx, "https://api.openai.com/v1/chat/completions", req)
	case ProviderLocal:
		resp, err = c.completeChat(ctx, LocalServerURL()+"/chat/completions", req)
	case ProviderGoogle:
		resp, err = c.completeGoogle(ctx, req)
	default:
		return nil, output.NewUserError(fmt.Sprintf("unsupported provider: %s", c.provider))
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "llm completion",
			"provider", c.provider,
			"model", c.model,
			"json", req.JSON,
			"duration", time.Since(start),
			"ok", err == nil,
		)
	}
	return resp, err
}

// maxErrorBody caps how much of a failed response is echoed back.
const maxErrorBody = 500

// doRequest performs an HTTP POST request with JSON body.
func (c *Client) doRequest(ctx context.Context, url string, body any, headers map[string]string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		errBody := string(respBody)
		if len(errBody) > maxErrorBody {
			errBody = errBody[:maxErrorBody]
		}
		return nil, output.NewSystemError(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, errBody))
	}
	return respBody, nil
}
