package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rems/internal/overview"
)

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Summarize a sample dataset",
		Long:  "Fetch one collection of each entity type from the server and print portfolio, financial and maintenance metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runOverview(ctx context.Context, w io.Writer) error {
	ds, err := newAPIClient().Dataset(ctx)
	if err != nil {
		return err
	}

	s := overview.Summarize(ds, time.Now())
	if isJSON() {
		return printJSON(w, s)
	}
	return printSummary(w, s)
}
