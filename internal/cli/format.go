package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/evcraddock/rems/internal/expense"
	"github.com/evcraddock/rems/internal/overview"
	"github.com/evcraddock/rems/internal/payment"
	"github.com/evcraddock/rems/internal/property"
	"github.com/evcraddock/rems/internal/task"
	"github.com/evcraddock/rems/internal/tenant"
)

const dateLayout = "2006-01-02"

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRawJSON re-indents an already encoded JSON document.
func printRawJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// writeTable prints rows under a header and a dashed separator.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	sep := make([]string, len(header))
	for i, h := range header {
		sep[i] = strings.Repeat("-", len(h))
	}

	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(sep, "\t")); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// printPropertyTable prints properties as a formatted table.
func printPropertyTable(w io.Writer, props []*property.Property) error {
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			truncate(p.Address, 32),
			string(p.Type),
			p.Status.Label(),
			formatPrice(int64(p.Size)),
			strconv.Itoa(p.YearBuilt),
			"$" + formatPrice(int64(p.Value)),
		})
	}
	return writeTable(w, []string{"ID", "NAME", "ADDRESS", "TYPE", "STATUS", "SQFT", "BUILT", "VALUE"}, rows)
}

// printTenantTable prints tenants as a formatted table.
func printTenantTable(w io.Writer, tenants []*tenant.Tenant) error {
	rows := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.Name,
			strconv.Itoa(t.UserID),
			strconv.Itoa(t.FacilityID),
			t.LeaseStart.Format(dateLayout),
			t.LeaseEnd.Format(dateLayout),
			"$" + formatPrice(int64(t.RentAmount)),
		})
	}
	return writeTable(w, []string{"ID", "NAME", "USER", "FACILITY", "LEASE START", "LEASE END", "RENT"}, rows)
}

// printPaymentTable prints payments as a formatted table.
func printPaymentTable(w io.Writer, payments []*payment.Payment) error {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.TenantID),
			strconv.Itoa(p.PropertyID),
			"$" + formatPrice(int64(p.Amount)) + " " + p.Currency,
			p.PaymentDate.Format(dateLayout),
			string(p.Method),
			string(p.Status),
		})
	}
	return writeTable(w, []string{"ID", "TENANT", "PROPERTY", "AMOUNT", "DATE", "METHOD", "STATUS"}, rows)
}

// printExpenseTable prints expenses as a formatted table.
func printExpenseTable(w io.Writer, expenses []*expense.Expense) error {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			strconv.Itoa(e.PropertyID),
			"$" + formatPrice(int64(e.Amount)) + " " + e.Currency,
			string(e.Category),
			string(e.Status),
			e.ExpenseDate.Format(dateLayout),
			truncate(e.Description, 30),
		})
	}
	return writeTable(w, []string{"ID", "PROPERTY", "AMOUNT", "CATEGORY", "STATUS", "DATE", "DESCRIPTION"}, rows)
}

// printTaskTable prints tasks as a formatted table.
func printTaskTable(w io.Writer, tasks []*task.Task) error {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.Title,
			strconv.Itoa(t.PropertyID),
			t.DueDate.Format(dateLayout),
			string(t.Category),
			string(t.Priority),
			string(t.Status),
		})
	}
	return writeTable(w, []string{"ID", "TITLE", "PROPERTY", "DUE", "CATEGORY", "PRIORITY", "STATUS"}, rows)
}

// printSummary prints the overview metrics in text format.
func printSummary(w io.Writer, s overview.Summary) error {
	fmt.Fprintln(w, "Portfolio")
	fmt.Fprintf(w, "  Properties:       %d (%d active)\n", s.TotalProperties, s.ActiveProperties)
	fmt.Fprintf(w, "  Tenants:          %d\n", s.TotalTenants)
	fmt.Fprintf(w, "  Property value:   %s\n", formatMoney(s.TotalPropertyValue))
	fmt.Fprintf(w, "  Monthly rent:     %s\n", formatMoney(s.MonthlyRent))
	fmt.Fprintf(w, "  Leases expiring:  %d (next 90 days)\n", s.LeasesExpiring)

	fmt.Fprintln(w, "\nFinances")
	fmt.Fprintf(w, "  Income:           %s\n", formatMoney(s.TotalIncome))
	fmt.Fprintf(w, "  Expenses:         %s\n", formatMoney(s.TotalExpenses))
	fmt.Fprintf(w, "  Net income:       %s\n", formatMoney(s.NetIncome))

	sections := []struct {
		title   string
		buckets []overview.Bucket
	}{
		{"Properties by type", s.PropertiesByType},
		{"Properties by status", s.PropertiesByStatus},
		{"Payments by status", s.PaymentsByStatus},
		{"Tasks by status", s.TasksByStatus},
		{"Tasks by category", s.TasksByCategory},
		{"Tasks by priority", s.TasksByPriority},
	}
	for _, sec := range sections {
		fmt.Fprintf(w, "\n%s\n", sec.title)
		for _, b := range sec.buckets {
			fmt.Fprintf(w, "  %-18s%d\n", b.Key, b.Count)
		}
	}

	fmt.Fprintln(w, "\nExpenses by category")
	for _, b := range s.ExpensesByCategory {
		fmt.Fprintf(w, "  %-18s%s\n", b.Key, formatMoney(b.Amount))
	}
	return nil
}

// formatPrice formats a whole number with thousands separators.
func formatPrice(dollars int64) string {
	s := fmt.Sprintf("%d", dollars)

	// Add commas
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return strings.Join(parts, ",")
}

// formatMoney formats a dollar amount with separators and cents.
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + "$" + d.StringFixed(2)
	}
	return sign + "$" + formatPrice(n) + "." + frac
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
