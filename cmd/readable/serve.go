package main

import (
	"context"
	"fmt"
	"time"

	readablehttp "github.com/prince50856457/readable/http"
)

// shutdownGrace bounds how long a draining server waits for in-flight
// extractions.
const shutdownGrace = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := readablehttp.NewServer(c.Addr, deps.Articles, deps.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "readable listening on %s\n", c.Addr)

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
