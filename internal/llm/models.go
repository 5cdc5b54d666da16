package llm

import (
	"os"
	"strings"

	"github.com/gorewood/folio/internal/output"
)

// providerPrefixes marks a provider in front of a model name. Native
// prefixes are part of real model names and are only stripped from aliases.
var providerPrefixes = []struct {
	prefix   string
	provider Provider
	native   bool
}{
	{"claude-", ProviderAnthropic, true},
	{"anthropic-", ProviderAnthropic, false},
	{"gemini-", ProviderGoogle, true},
	{"google-", ProviderGoogle, false},
	{"openai-", ProviderOpenAI, false},
	{"local-", ProviderLocal, false},
}

// Resolve turns a user-facing model name into a provider and a concrete
// model identifier. An explicit provider skips prefix parsing.
func Resolve(model string, provider Provider) (Provider, string) {
	if model == "" {
		model = DefaultModel
	}
	if provider == "" {
		provider, model = parseProviderPrefix(model)
	}
	if provider == "" {
		provider = inferProvider(model)
	}
	return provider, resolveModelAlias(model, provider)
}

// parseProviderPrefix splits "claude-haiku" into anthropic and "haiku".
// Full model names such as "gemini-2.5-flash" keep their prefix.
func parseProviderPrefix(model string) (Provider, string) {
	lower := strings.ToLower(model)
	for _, p := range providerPrefixes {
		if !strings.HasPrefix(lower, p.prefix) {
			continue
		}
		rest := model[len(p.prefix):]
		if _, alias := modelAliases[p.provider][strings.ToLower(rest)]; p.native && !alias {
			return p.provider, model
		}
		return p.provider, rest
	}
	return "", model
}

var providerPatterns = []struct {
	substring string
	provider  Provider
}{
	{"claude", ProviderAnthropic},
	{"haiku", ProviderAnthropic},
	{"sonnet", ProviderAnthropic},
	{"opus", ProviderAnthropic},
	{"gpt", ProviderOpenAI},
	{"o3", ProviderOpenAI},
	{"o4", ProviderOpenAI},
	{"gemini", ProviderGoogle},
	{"flash", ProviderGoogle},
	{"local", ProviderLocal},
	{"llama", ProviderLocal},
	{"qwen", ProviderLocal},
	{"mistral", ProviderLocal},
}

// inferProvider guesses the provider from the model name; first match wins.
func inferProvider(model string) Provider {
	lower := strings.ToLower(model)
	for _, p := range providerPatterns {
		if strings.Contains(lower, p.substring) {
			return p.provider
		}
	}
	return ProviderGoogle
}

var modelAliases = map[Provider]map[string]string{
	ProviderAnthropic: {
		"haiku":  "claude-haiku-4-5",
		"sonnet": "claude-sonnet-4-5",
	},
	ProviderOpenAI: {
		"nano": "gpt-5-nano",
		"mini": "gpt-5-mini",
	},
	ProviderGoogle: {
		"flash":      "gemini-2.5-flash",
		"flash-lite": "gemini-2.5-flash-lite",
		"pro":        "gemini-2.5-pro",
	},
	ProviderLocal: {
		"local": "",
	},
}

func resolveModelAlias(model string, provider Provider) string {
	if resolved, ok := modelAliases[provider][strings.ToLower(model)]; ok {
		return resolved
	}
	return model
}

// apiKeyEnv lists the variables checked for each provider, in order.
var apiKeyEnv = map[Provider][]string{
	ProviderAnthropic: {"ANTHROPIC_API_KEY"},
	ProviderOpenAI:    {"OPENAI_API_KEY"},
	ProviderGoogle:    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	ProviderLocal:     nil,
}

func getAPIKey(provider Provider) (string, error) {
	vars, ok := apiKeyEnv[provider]
	if !ok {
		return "", output.NewUserError("unsupported provider: " + string(provider))
	}
	if len(vars) == 0 {
		return "", nil
	}
	for _, v := range vars {
		if key := os.Getenv(v); key != "" {
			return key, nil
		}
	}
	return "", output.NewUserError(strings.Join(vars, " or ") + " environment variable not set")
}

// LocalServerURL returns the base URL of an OpenAI-compatible local server.
func LocalServerURL() string {
	if url := os.Getenv("LOCAL_LLM_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://localhost:1234/v1"
}

// SupportedProviders returns a list of supported providers.
func SupportedProviders() []string {
	return []string{string(ProviderGoogle), string(ProviderAnthropic), string(ProviderOpenAI), string(ProviderLocal)}
}

// APIKeyEnvVars returns every environment variable consulted for API keys.
func APIKeyEnvVars() []string {
	var vars []string
	for _, p := range []Provider{ProviderGoogle, ProviderAnthropic, ProviderOpenAI} {
		vars = append(vars, apiKeyEnv[p]...)
	}
	return vars
}
