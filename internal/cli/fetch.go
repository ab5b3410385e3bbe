package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rems/internal/mockdata"
)

func newFetchCmd() *cobra.Command {
	var validArgs []string
	for _, t := range mockdata.Types() {
		validArgs = append(validArgs, string(t))
	}

	return &cobra.Command{
		Use:       "fetch <" + strings.Join(validArgs, "|") + ">",
		Short:     "Fetch a sample collection from the server",
		Long:      "Request one freshly generated sample collection from a running rems server and print it.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runFetch(ctx context.Context, w io.Writer, arg string) error {
	typ, err := mockdata.ParseType(arg)
	if err != nil {
		return fmt.Errorf("unknown type %q (want one of %s)", arg, typeList())
	}

	c := newAPIClient()

	if isJSON() {
		raw, err := c.Fetch(ctx, typ)
		if err != nil {
			return err
		}
		return printRawJSON(w, raw)
	}

	switch typ {
	case mockdata.Properties:
		props, err := c.FetchProperties(ctx)
		if err != nil {
			return err
		}
		return printPropertyTable(w, props)
	case mockdata.Tenants:
		tenants, err := c.FetchTenants(ctx)
		if err != nil {
			return err
		}
		return printTenantTable(w, tenants)
	case mockdata.Payments:
		payments, err := c.FetchPayments(ctx)
		if err != nil {
			return err
		}
		return printPaymentTable(w, payments)
	case mockdata.Expenses:
		expenses, err := c.FetchExpenses(ctx)
		if err != nil {
			return err
		}
		return printExpenseTable(w, expenses)
	case mockdata.Tasks:
		tasks, err := c.FetchTasks(ctx)
		if err != nil {
			return err
		}
		return printTaskTable(w, tasks)
	}
	return nil
}

func typeList() string {
	var names []string
	for _, t := range mockdata.Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
