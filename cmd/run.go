package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"random-service/internal/adapter/http"
	"random-service/internal/adapter/random"
	"random-service/internal/adapter/usecase"
	"random-service/internal/config"
	"random-service/internal/logger"
	"random-service/internal/server"
)

type runOptions struct {
	address    string
	configPath string
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources := config.Sources{
				Flag:       opts.address,
				FlagSet:    cmd.Flags().Changed("address"),
				ConfigPath: opts.configPath,
			}
			return runServer(cmd.Context(), cmd, sources)
		},
	}
	cmd.Flags().StringVarP(&opts.address, "address", "a", "", "Sets an address")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Sets a custom config file")
	return cmd
}

// runServer loads configuration, builds the logger, resolves the bind
// address and serves until ctx is cancelled.
func runServer(ctx context.Context, cmd *cobra.Command, sources config.Sources) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Log.SlogLevel(), cfg.Log.SlogFormat())
	log.Info(fmt.Sprintf("%s - %s", appName, appVersion), slog.String("env", cfg.Env))
	logger.Trace(ctx, log, "starting server")

	addr := config.ResolveAddress(log, sources)

	logger.Trace(ctx, log, "creating service handler")
	svc := usecase.NewRandomUseCase(random.NewSource(), log)
	handler := httpadapter.NewHandler(svc, log)

	srv := server.New(handler.Router(), cfg.HTTP, log)
	log.Debug("run")
	return srv.Run(ctx, addr)
}
