package ai

import (
	"context"
)

// CompletionProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type CompletionProvider interface {
	// Complete sends prompt as a single user message and returns the full response text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Stream sends prompt and returns a lazy sequence of text chunks.
	// The returned Stream is single-pass; consuming it drives further network reads.
	Stream(ctx context.Context, prompt string) (Stream, error)
}

// Stream is a pull-based, non-restartable sequence of completion text fragments.
// Next returns io.EOF once the model has finished responding.
type Stream interface {
	Next() (string, error)
}
