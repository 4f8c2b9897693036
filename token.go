package notebook

import "context"

// TokenCounter reports the size of text in model tokens.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
