package notebook

import (
	"context"
	"strings"
)

// ChatRequest is a question asked against an ordered list of documents.
type ChatRequest struct {
	Question  string      `json:"question"`
	Documents []*Document `json:"documents"`
}

// Validate returns EINVALID if the question or the document list is missing.
// An empty, non-nil document list is accepted.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return Errorf(EINVALID, "question required")
	}
	if r.Documents == nil {
		return Errorf(EINVALID, "documents required")
	}
	for i, doc := range r.Documents {
		if doc == nil {
			return Errorf(EINVALID, "document %d is null", i)
		}
	}
	return nil
}

// ChatResponse carries the answer for a ChatRequest.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// ChatService answers questions over request-supplied documents.
type ChatService interface {
	// Chat validates the request, assembles the context and asks the
	// answering capability. Returns EINVALID before any extraction when the
	// request is malformed and EUPSTREAM when answering fails.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Answerer answers a question given an assembled context.
type Answerer interface {
	Answer(ctx context.Context, systemContext string, question string) (string, error)
}

// SystemPrompt builds the instruction sent ahead of the question.
func SystemPrompt(systemContext string) string {
	return "Tu es un assistant de recherche. Réponds en utilisant le contexte suivant.\n" +
		"Cite les sources. Si tu ne sais pas, dis-le.\n\n" +
		"CONTEXTE :\n" + systemContext
}
