package providers

import (
	"context"
)

// CompletionProvider defines the interface for the text generation service
type CompletionProvider interface {
	// CompleteJSON sends a system/user prompt pair constrained to a JSON
	// object response and returns the raw JSON text
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
