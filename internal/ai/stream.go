package ai

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
)

// geminiStream adapts the genai response iterator to the Stream contract.
// It is single-pass: each Next call pulls the following chunk off the wire.
type geminiStream struct {
	it *genai.GenerateContentResponseIterator
}

func (s *geminiStream) Next() (string, error) {
	for {
		resp, err := s.it.Next()
		if errors.Is(err, iterator.Done) {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("completion request failed: %w", err)
		}

		// Some responses carry metadata-only chunks with no text parts.
		if text := candidateText(resp); text != "" {
			return text, nil
		}
	}
}
