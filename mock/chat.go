package mock

import (
	"context"

	"github.com/fwojciec/notebook"
)

var (
	_ notebook.ChatService = (*ChatService)(nil)
	_ notebook.Answerer    = (*Answerer)(nil)
)

// ChatService is a mock implementation of notebook.ChatService.
type ChatService struct {
	ChatFn func(ctx context.Context, req *notebook.ChatRequest) (*notebook.ChatResponse, error)
}

func (s *ChatService) Chat(ctx context.Context, req *notebook.ChatRequest) (*notebook.ChatResponse, error) {
	return s.ChatFn(ctx, req)
}

// Answerer is a mock implementation of notebook.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, systemContext, question string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, systemContext, question string) (string, error) {
	return a.AnswerFn(ctx, systemContext, question)
}
