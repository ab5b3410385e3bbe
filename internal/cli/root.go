// Package cli defines the cobra command tree for rems.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/rems/internal/client"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rems",
		Short:         "Real estate management sample service",
		Long:          "Serve the real estate management dashboard and its sample data API, or query a running server for properties, tenants, payments, expenses and tasks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newServeCmd(),
		newFetchCmd(),
		newOverviewCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the rems API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
