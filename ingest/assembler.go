package ingest

import (
	"context"

	"github.com/fwojciec/notebook"
)

// Assembler resolves documents one at a time, in input order, and joins
// their blocks into a single context string.
type Assembler struct {
	Resolver notebook.Resolver
}

// NewAssembler returns an Assembler backed by resolver.
func NewAssembler(resolver notebook.Resolver) *Assembler {
	return &Assembler{Resolver: resolver}
}

// Blocks resolves each document sequentially.
func (a *Assembler) Blocks(ctx context.Context, docs []*notebook.Document) []notebook.ContextBlock {
	blocks := make([]notebook.ContextBlock, 0, len(docs))
	for _, doc := range docs {
		blocks = append(blocks, a.Resolver.Resolve(ctx, doc))
	}
	return blocks
}

// Assemble returns the blocks of docs joined by notebook.ContextSeparator.
// No cap is applied beyond the per-source limits.
func (a *Assembler) Assemble(ctx context.Context, docs []*notebook.Document) string {
	return notebook.FormatContext(a.Blocks(ctx, docs))
}
