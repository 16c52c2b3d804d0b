package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yigit/clubr/internal/bootstrap"
	"github.com/yigit/clubr/internal/config"
	"github.com/yigit/clubr/internal/pkg/logger"
	"github.com/yigit/clubr/internal/server"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "clubr",
		Short:         "Clubr session service",
		Long:          `Serves the Clubr campus club app: per-user sessions over HTTP with live updates on a websocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c",
		config.GetEnv("CONFIG_PATH", "configs/config.yaml"), "path to the YAML config file")

	root.AddCommand(newServeCmd(&configPath), newCatalogCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	srv, err := server.NewServer(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	if err := srv.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("Application finished gracefully.")
	return nil
}

// newCatalogCmd prints the catalog new sessions start from. Logs go to
// stderr so the YAML on stdout stays clean.
func newCatalogCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the starting catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			settings := logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format)
			settings.Output = cmd.ErrOrStderr()
			lgr := logger.Configure(settings)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			c, err := bootstrap.LoadCatalog(ctx, cfg, lgr)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c); err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			return enc.Close()
		},
	}
}
