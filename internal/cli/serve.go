package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/meetlayout/internal/api"
)

const defaultAddr = "localhost:8080"

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts, grids and live sessions over HTTP",
		Long: `Serve layouts, grids and live sessions over HTTP.

Endpoints:
  GET    /healthz
  POST   /v1/layout                   state -> regions
  POST   /v1/grid                     grid parameters -> grid
  POST   /v1/sessions                 {device, width, height, cameras} -> session
  GET    /v1/sessions
  GET    /v1/sessions/{id}
  PUT    /v1/sessions/{id}/state      state -> settled session
  PUT    /v1/sessions/{id}/streams    [{id, userId, name}] -> settled session
  POST   /v1/sessions/{id}/focus/{stream}
  DELETE /v1/sessions/{id}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := c.defaults()
			if err != nil {
				return fmt.Errorf("load defaults: %w", err)
			}
			ctx := cmd.Context()
			srv := api.New(api.WithDefaults(defaults), api.WithLogger(loggerFromContext(ctx)))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}
