package main

import (
	"fmt"

	srgin "github.com/fwojciec/sitereport/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	server := srgin.NewServer(deps.Reports, deps.Logger)
	fmt.Fprintf(deps.Stderr, "Serving reports on %s\n", c.Addr)
	return server.ListenAndServe(deps.Ctx, c.Addr)
}
