package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerer_Answer_ReturnsUpstreamErrorWithoutClient(t *testing.T) {
	t.Parallel()

	answerer := gemini.NewAnswerer(nil, "")

	_, err := answerer.Answer(context.Background(), "context", "question")

	require.Error(t, err)
	assert.Equal(t, notebook.EUPSTREAM, notebook.ErrorCode(err))
	assert.Contains(t, notebook.ErrorMessage(err), "GEMINI_API_KEY")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("SOURCE: Notes\nCONTENU: Paris")

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	text := config.SystemInstruction.Parts[0].Text
	assert.Contains(t, text, "Cite les sources")
	assert.Contains(t, text, "CONTEXTE :\nSOURCE: Notes\nCONTENU: Paris")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}
