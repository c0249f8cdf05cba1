package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/internal/server"
)

// serveCommand creates the serve command running the HTTP adapter.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts over HTTP",
		Long: `Serve layouts over HTTP.

Endpoints:
  GET  /healthz            build information
  GET  /v1/interpolations  supported curves, step modes and shape types
  POST /v1/layout          layout document of a JSON chart
  POST /v1/hit             shapes under a pointer

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Serving on %s", StyleHighlight.Render("http://"+addr))
			return server.New(c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", defaultAddr, "listen address")

	return cmd
}
