package llm

import (
	"context"
	"encoding/json"

	"github.com/gorewood/folio/internal/output"
)

// Chat completions wire format, shared by OpenAI and local servers such as
// LM Studio and Ollama.

type chatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *apiError) asExitError() error {
	return output.NewSystemError("API error: " + e.Message)
}

func (c *Client) completeChat(ctx context.Context, url string, req Request) (*Response, error) {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.apiKey}
	}
	respBody, err := c.doRequest(ctx, url, buildChatRequest(c.model, req), headers)
	if err != nil {
		return nil, err
	}
	return parseChatResponse(respBody, c.model)
}

func buildChatRequest(model string, req Request) chatRequest {
	body := chatRequest{
		Model:       model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return body
}

func parseChatResponse(respBody []byte, model string) (*Response, error) {
	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}
	if result.Error != nil {
		return nil, result.Error.asExitError()
	}
	if len(result.Choices) == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	// Local servers answer for whatever model is loaded.
	if model == "" {
		model = result.Model
	}
	if model == "" {
		model = string(ProviderLocal)
	}
	return &Response{Content: result.Choices[0].Message.Content, Model: model}, nil
}
