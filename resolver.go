package notebook

import "context"

// Resolver turns one document into a context block.
type Resolver interface {
	// Resolve never fails: extraction errors are replaced by placeholder
	// text inside the returned block.
	Resolve(ctx context.Context, doc *Document) ContextBlock
}

// Placeholder builds the bracketed text substituted for a source that
// could not be extracted.
func Placeholder(kind string, err error) string {
	return "[" + kind + " content unavailable: " + ErrorMessage(err) + "]"
}
