package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/go-selfies/internal/config"
	"github.com/turtacn/go-selfies/internal/constraints"
	httpapi "github.com/turtacn/go-selfies/internal/interfaces/http"
	"github.com/turtacn/go-selfies/internal/monitoring/logging"
	"github.com/turtacn/go-selfies/internal/monitoring/metrics"
)

// newServeCommand builds `selfies serve`: the HTTP API with prometheus
// metrics and config hot reload.
func newServeCommand(cliCtx *CLIContext, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the codec over HTTP with prometheus metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := cliCtx.Logger
			collector := metrics.NewCollector()
			handlers := httpapi.NewHandlers(logger, collector)
			server := httpapi.NewServer(cliCtx.Config.Server, handlers, logger)

			// Hot-apply the safe subset of config changes: the constraint
			// table.  Server tunables require a restart.
			if opts.ConfigPath != "" {
				config.Watch(opts.ConfigPath, func(cfg *config.Config) {
					if err := constraints.Install(cfg.EffectiveConstraints()); err != nil {
						logger.Warn("rejected constraint change", logging.Err(err))
						return
					}
					logger.Info("constraints reloaded",
						logging.String("preset", cfg.Constraints.Preset))
				})
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx)
		},
	}
}

//Personal.AI order the ending
