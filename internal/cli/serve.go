package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treetop/internal/server"
	"github.com/matzehuels/treetop/pkg/observability"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve grid analysis over HTTP",
		Long: `Run the HTTP API until interrupted.

Endpoints:
  GET  /healthz
  POST /v1/analyze?orientation=natural|flipped&refresh=true
  POST /v1/score?row=R&col=C

Request bodies are raw grid text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			// Access logs at info level.
			observability.SetHTTPHooks(observability.NewLogHooks(logger))

			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			printInfo(cmd.ErrOrStderr(), "Serving on %s", StyleValue.Render(addr))
			return server.New(runner, logger, c.cfg.Cache.TTL.Duration).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}
