package gemini

import (
	"context"

	"github.com/fwojciec/notebook"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ notebook.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens offline with the Gemini tokenizer, so context
// size can be reported without calling the API.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, notebook.Errorf(notebook.EUPSTREAM, "load tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, notebook.Errorf(notebook.EINTERNAL, "count tokens: %v", err)
	}

	return int(result.TotalTokens), nil
}
