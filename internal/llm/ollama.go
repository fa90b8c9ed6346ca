package llm

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// OllamaProvider wraps OpenAIProvider to target a local Ollama server.
// Ollama exposes an OpenAI-compatible API and needs no API key.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider targeting a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	oaiCfg := OpenAIConfig{
		// The SDK requires a bearer token even though Ollama ignores it.
		APIKey:  "ollama",
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	inner, err := newOpenAIProviderRaw(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OllamaProvider{OpenAIProvider: inner}, nil
}
