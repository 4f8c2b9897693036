package main

import (
	"fmt"

	"github.com/fwojciec/notebook"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	req, err := readRequest(c.Request, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notebook.ErrorMessage(err))
		return err
	}

	resp, err := deps.ChatService.Chat(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notebook.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, resp.Answer)
	return nil
}
