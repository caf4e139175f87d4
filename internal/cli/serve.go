package cli

import (
	"github.com/spf13/cobra"

	"github.com/pictoplace/pictoplace/pkg/server"
)

// newServeCmd creates the serve command, which runs the placement HTTP API.
// Configuration comes from an optional TOML file; the address and cache
// directory flags override it. The server shuts down gracefully when the
// command context is cancelled.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		cachePath  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the placement HTTP API",
		Long: `Run the placement HTTP API.

Endpoints:
  GET  /healthz        liveness probe
  GET  /v1/letters     letters with special dash handling
  POST /v1/placements  derive placements for a manifest

Examples:
  pictoplace serve
  pictoplace serve --addr :9000
  pictoplace serve --config pictoplace.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if cachePath != "" {
				cfg.CacheDir = cachePath
			}

			srv, err := server.New(ctx, cfg, loggerFromContext(ctx))
			if err != nil {
				return err
			}
			defer srv.Close()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&cachePath, "cache-dir", "", "file cache directory (overrides config)")

	return cmd
}
