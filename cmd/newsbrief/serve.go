package main

import (
	"context"
	"fmt"

	nbgin "github.com/fwojciec/newsbrief/gin"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled,
// then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	srv := nbgin.NewServer(deps.Service,
		nbgin.WithAddr(c.Addr),
		nbgin.WithLogger(deps.Logger),
	)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down", "addr", srv.Addr())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
