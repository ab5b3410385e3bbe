package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective CLI settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigShow(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "set-server <url>",
			Short: "Set the server URL used by fetch, overview and status",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSetServer(cmd.OutOrStdout(), args[0])
			},
		},
	)

	return cmd
}

func runConfigShow(w io.Writer) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	serverURL := getServerURL()
	if isJSON() {
		return printJSON(w, map[string]string{"config_path": path, "server_url": serverURL})
	}

	fmt.Fprintf(w, "Config:  %s\n", path)
	fmt.Fprintf(w, "Server:  %s\n", serverURL)
	return nil
}

func runConfigSetServer(w io.Writer, rawURL string) error {
	rawURL = strings.TrimRight(strings.TrimSpace(rawURL), "/")
	if err := validator.New().Var(rawURL, "required,http_url"); err != nil {
		return fmt.Errorf("invalid server URL %q", rawURL)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.ServerURL = rawURL
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Server URL set to %s\n", rawURL)
	return nil
}
