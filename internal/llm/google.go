package llm

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gorewood/folio/internal/output"
)

const googleEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/"

type googleRequest struct {
	Contents          []googleContent      `json:"contents"`
	SystemInstruction *googleContent       `json:"systemInstruction,omitempty"`
	GenerationConfig  *googleGenerationCfg `json:"generationConfig,omitempty"`
}

type googleContent struct {
	Parts []googlePart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenerationCfg struct {
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type googleResponse struct {
	Candidates []struct {
		Content googleContent `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

func (c *Client) completeGoogle(ctx context.Context, req Request) (*Response, error) {
	endpoint := googleEndpoint + url.PathEscape(c.model) + ":generateContent"
	respBody, err := c.doRequest(ctx, endpoint, buildGoogleRequest(req), map[string]string{
		"x-goog-api-key": c.apiKey,
	})
	if err != nil {
		return nil, err
	}
	return parseGoogleResponse(respBody, c.model)
}

func buildGoogleRequest(req Request) googleRequest {
	body := googleRequest{
		Contents: []googleContent{{Role: "user", Parts: []googlePart{{Text: req.Prompt}}}},
	}
	if req.System != "" {
		body.SystemInstruction = &googleContent{Parts: []googlePart{{Text: req.System}}}
	}

	cfg := googleGenerationCfg{MaxOutputTokens: req.MaxTokens, Temperature: req.Temperature}
	if req.JSON {
		cfg.ResponseMimeType = "application/json"
	}
	if cfg != (googleGenerationCfg{}) {
		body.GenerationConfig = &cfg
	}
	return body
}

func parseGoogleResponse(respBody []byte, model string) (*Response, error) {
	var result googleResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse response", err)
	}
	if result.Error != nil {
		return nil, result.Error.asExitError()
	}
	if len(result.Candidates) == 0 {
		return nil, output.NewSystemError("empty response from API")
	}

	var content strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}
	if content.Len() == 0 {
		return nil, output.NewSystemError("empty response from API")
	}
	return &Response{Content: content.String(), Model: model}, nil
}
