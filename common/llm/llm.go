package llm

import (
	"github.com/invopop/jsonschema"
)

// Config holds LLM client configuration.
type Config struct {
	APIKey    string // Required
	BaseURL   string // Optional: OpenAI-compatible endpoint (e.g. Mistral)
	Model     string
	MaxTokens int
}

// Message represents a conversation message.
type Message struct {
	Role    string // "system", "user" or "assistant"
	Content string
}

// Request is a single-turn structured-output request.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       any
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

// Response carries token accounting for observability.
type Response struct {
	PromptTokens     int
	CompletionTokens int
}

// GenerateSchema generates a JSON schema for a response type.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Temp returns a pointer to a temperature value for inline use.
func Temp(t float64) *float64 {
	return &t
}
