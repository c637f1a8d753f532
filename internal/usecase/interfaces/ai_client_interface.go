package interfaces

import "context"

// IAIClient abstracts the language-model provider (OpenAI).
//
// EmbedTexts returns one embedding per input text, in order. ChatCompletion
// sends a single user prompt and returns the assistant message content.

type IAIClient interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	ChatCompletion(ctx context.Context, prompt string) (string, error)
}
