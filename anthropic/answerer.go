// Package anthropic implements notebook.Answerer with the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/notebook"
)

// Defaults for the Messages API call.
const (
	DefaultModel     = "claude-sonnet-4-5-20250929"
	DefaultMaxTokens = 4096
)

// Ensure Answerer implements notebook.Answerer at compile time.
var _ notebook.Answerer = (*Answerer)(nil)

// Answerer answers questions with a Claude model.
type Answerer struct {
	client    sdk.Client
	model     string
	MaxTokens int64
}

// NewAnswerer creates an Answerer for model. Extra request options, such as
// a base URL, are passed to the SDK client.
func NewAnswerer(apiKey, model string, opts ...option.RequestOption) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Answerer{
		client:    sdk.NewClient(opts...),
		model:     model,
		MaxTokens: DefaultMaxTokens,
	}
}

// Answer sends the system prompt built from systemContext and the question
// as a single user turn, and returns the concatenated text blocks.
func (a *Answerer) Answer(ctx context.Context, systemContext, question string) (string, error) {
	msg, err := a.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: a.MaxTokens,
		System:    []sdk.TextBlockParam{{Text: notebook.SystemPrompt(systemContext)}},
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(question))},
	})
	if err != nil {
		return "", notebook.Errorf(notebook.EUPSTREAM, "anthropic: %v", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", notebook.Errorf(notebook.EUPSTREAM, "anthropic returned an empty answer")
	}
	return sb.String(), nil
}
