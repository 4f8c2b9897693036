package main

import (
	"fmt"
	"net"
	"strconv"

	nbhttp "github.com/fwojciec/notebook/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until deps.Ctx is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := nbhttp.NewServer()
	server.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	server.MaxRequestSize = c.MaxBody
	server.Logger = deps.Logger
	server.ChatService = deps.ChatService
	if deps.Gatherer != nil {
		server.Gatherer = deps.Gatherer
	}

	if err := server.Open(); err != nil {
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	}
	deps.Logger.Info("server started", "addr", server.Addr, "url", server.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("server stopping")
		return server.Close()
	})
	return g.Wait()
}

