package llm

import (
	"fmt"
	"strings"
)

// New creates the text backend selected by cfg. An empty provider name
// defaults to Ollama, matching a local-first setup.
func New(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "ollama":
		return NewOllama(cfg), nil

	case "openai":
		return NewOpenAI(cfg)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: ollama, openai)", cfg.Provider)
	}
}
