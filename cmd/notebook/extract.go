package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/notebook"
	"github.com/fwojciec/notebook/crawl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	req, err := readRequest(c.Request, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notebook.ErrorMessage(err))
		return err
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notebook.ErrorMessage(err))
		return err
	}

	systemContext := deps.Assembler.Assemble(deps.Ctx, req.Documents)
	fmt.Fprintln(deps.Stdout, systemContext)

	summary := []string{
		fmt.Sprintf("%d documents", len(req.Documents)),
		fmt.Sprintf("%d chars", notebook.TextLen(systemContext)),
		crawl.FormatBytes(len(systemContext)),
	}
	if c.CountTokens {
		if deps.TokenCounter == nil {
			return notebook.Errorf(notebook.EINTERNAL, "token counter not configured")
		}
		tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, systemContext)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", notebook.ErrorMessage(err))
			return err
		}
		summary = append(summary, crawl.FormatTokens(tokens))
	}
	fmt.Fprintf(deps.Stderr, "context: %s\n", strings.Join(summary, ", "))
	return nil
}
