package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rems/internal/config"
	"github.com/evcraddock/rems/internal/logging"
	"github.com/evcraddock/rems/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port       int
		configFile string
		devMode    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI and sample data API",
		Long:  "Start an HTTP server for the dashboard and the /api/data sample endpoint. Settings come from --config, then REMS_* environment variables, then flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := serveConfig(configFile, cmd.Flags().Changed("port"), port, devMode)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML server config file")
	cmd.Flags().BoolVar(&devMode, "dev", false, "human-readable debug logging")

	return cmd
}

// serveConfig loads the server config and applies flag overrides.
func serveConfig(path string, portSet bool, port int, devMode bool) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if portSet {
		cfg.Port = port
	}
	if devMode {
		cfg.DevMode = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, cfg config.Config) error {
	logging.Setup(cfg.DevMode)

	srv, err := web.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting web UI on http://localhost:%d\n", cfg.Port)
	return srv.Run(ctx)
}
