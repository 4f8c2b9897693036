// Package gemini implements notebook.Answerer and notebook.TokenCounter
// with Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/notebook"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Answerer implements notebook.Answerer at compile time.
var _ notebook.Answerer = (*Answerer)(nil)

// Answerer implements notebook.Answerer using Google Gemini.
type Answerer struct {
	client *genai.Client
	model  string
}

// NewAnswerer creates a new Answerer. A nil client is accepted so the
// server can start without credentials; every call then fails with EUPSTREAM.
func NewAnswerer(client *genai.Client, model string) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	return &Answerer{client: client, model: model}
}

// Answer sends the question with the context carried in the system instruction.
func (a *Answerer) Answer(ctx context.Context, systemContext, question string) (string, error) {
	if a.client == nil {
		return "", notebook.Errorf(notebook.EUPSTREAM, "gemini client not configured: GEMINI_API_KEY is missing")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(question, "user")},
		BuildConfig(systemContext),
	)
	if err != nil {
		return "", notebook.Errorf(notebook.EUPSTREAM, "gemini: %v", err)
	}
	if result == nil {
		return "", notebook.Errorf(notebook.EUPSTREAM, "gemini returned nil result")
	}

	answer := result.Text()
	if strings.TrimSpace(answer) == "" {
		return "", notebook.Errorf(notebook.EUPSTREAM, "gemini returned an empty answer")
	}
	return answer, nil
}

// BuildConfig returns the GenerateContentConfig carrying the system prompt
// built around systemContext.
func BuildConfig(systemContext string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: notebook.SystemPrompt(systemContext)}},
		},
		Temperature: &temp,
	}
}
