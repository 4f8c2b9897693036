package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/notebook"
	"github.com/google/uuid"
)

var _ notebook.ChatService = (*ChatService)(nil)

// ChatService answers a question over the documents supplied with it.
type ChatService struct {
	Assembler *Assembler
	Answerer  notebook.Answerer
	Logger    *slog.Logger
}

// NewChatService returns a ChatService.
func NewChatService(assembler *Assembler, answerer notebook.Answerer) *ChatService {
	return &ChatService{Assembler: assembler, Answerer: answerer}
}

// Chat validates req before any extraction, assembles the context and
// asks the Answerer. Answering failures are returned as EUPSTREAM.
func (s *ChatService) Chat(ctx context.Context, req *notebook.ChatRequest) (*notebook.ChatResponse, error) {
	if req == nil {
		return nil, notebook.Errorf(notebook.EINVALID, "request required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requestID := notebook.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = notebook.NewContextWithRequestID(ctx, requestID)
	}
	log := s.logger().With("request_id", requestID)

	begin := time.Now()
	systemContext := s.Assembler.Assemble(ctx, req.Documents)
	log.Info("context assembled",
		"documents", len(req.Documents),
		"chars", notebook.TextLen(systemContext),
		"duration", time.Since(begin),
	)

	answer, err := s.Answerer.Answer(ctx, systemContext, req.Question)
	if err != nil {
		log.Error("answer failed", "err", err)
		return nil, upstreamError(err)
	}

	return &notebook.ChatResponse{Answer: answer}, nil
}

func upstreamError(err error) error {
	var e *notebook.Error
	switch {
	case notebook.ErrorCode(err) == notebook.EUPSTREAM:
		return err
	case errors.As(err, &e):
		return notebook.Errorf(notebook.EUPSTREAM, "answering failed: %s", e.Message)
	default:
		return notebook.Errorf(notebook.EUPSTREAM, "answering failed: %v", err)
	}
}

func (s *ChatService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
