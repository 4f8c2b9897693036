package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	// The tokenizer model is downloaded on first use.
	tc, err := gemini.NewTokenCounter("gemini-2.0-flash")
	if err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}

	var _ notebook.TokenCounter = tc

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "SOURCE: Notes\nCONTENU: Paris is the capital of France.")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("longer context returns more tokens", func(t *testing.T) {
		t.Parallel()

		shortCount, err := tc.CountTokens(context.Background(), "Paris")
		require.NoError(t, err)

		longCount, err := tc.CountTokens(context.Background(), "Paris is the capital and most populous city of France, with an estimated population of two million residents.")
		require.NoError(t, err)

		assert.Greater(t, longCount, shortCount)
	})
}
