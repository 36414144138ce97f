package llm

import "context"

// temperature is applied to every completion request, whichever backend
// serves it.
const temperature = 0.7

// Provider is a single-shot text completion backend.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one prompt and returns the model's full response text.
	// The deadline comes from ctx. Implementations never retry on their own;
	// the retry budget belongs to the caller.
	Complete(ctx context.Context, prompt string) (string, error)

	// Available reports whether the backend is reachable and configured
	Available(ctx context.Context) bool
}

// Config holds text backend configuration
type Config struct {
	// Provider name: "ollama" (default) or "openai"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (Ollama host, OpenAI-compatible proxies)
	BaseURL string
}
