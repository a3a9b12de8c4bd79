package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/print-shop/ledger/internal/application/usecase/report"
	"github.com/print-shop/ledger/internal/domain/entity"
	"github.com/print-shop/ledger/internal/domain/valueobject"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

// scopeFlags are the flags shared by summary and export.
type scopeFlags struct {
	year         int
	month        int
	all          bool
	top          int
	includeEmpty bool
}

func (f *scopeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.year, "year", 0, "calendar year of the month to report")
	cmd.Flags().IntVar(&f.month, "month", 0, "month (1-12) to report")
	cmd.Flags().BoolVar(&f.all, "all", false, "report over every transaction instead of one month")
	cmd.Flags().IntVar(&f.top, "top", 0, "number of top expenses (defaults to the configured value)")
	cmd.Flags().BoolVar(&f.includeEmpty, "include-empty", false, "list categories without transactions with a zero total")
}

func (f *scopeFlags) input(cmd *cobra.Command) (report.ComputeSummaryInput, error) {
	var year, month *int
	if cmd.Flags().Changed("year") {
		year = &f.year
	}
	if cmd.Flags().Changed("month") {
		month = &f.month
	}

	raw := ""
	if f.all {
		raw = string(valueobject.ScopeKindAll)
	}
	scope, err := valueobject.ParseScope(raw, year, month)
	if err != nil {
		return report.ComputeSummaryInput{}, err
	}

	return report.ComputeSummaryInput{
		Scope:                  scope,
		TopExpenses:            f.top,
		IncludeEmptyCategories: f.includeEmpty,
	}, nil
}

func (c *cli) summaryCmd() *cobra.Command {
	var (
		flags  scopeFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the profit summary of a month or of all time",
		Example: `  ledgerctl summary --year 2024 --month 5
  ledgerctl summary --all --top 10 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := flags.input(cmd)
			if err != nil {
				return err
			}

			injector, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			output, err := injector.UseCases.ComputeSummary.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToSummaryResponse(output.Summary, injector.Location))
			}
			return printSummary(cmd.OutOrStdout(), output.Summary, injector.Location)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		flags scopeFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the summary of a month or of all time to an Excel workbook",
		Example: `  ledgerctl export --year 2024 --month 5 --out may.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := flags.input(cmd)
			if err != nil {
				return err
			}

			injector, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			output, err := injector.UseCases.ExportSummary.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = output.FileName
			}
			if err := os.WriteFile(path, output.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(output.Content))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to ledger-summary-<scope>.xlsx)")
	return cmd
}

func (c *cli) periodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "periods",
		Short: "List the months that have transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			injector, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			periods, err := injector.UseCases.ListPeriods.Execute(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range periods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.String(), p.Label())
			}
			return nil
		},
	}
}

func printSummary(w io.Writer, summary *entity.ReportSummary, loc *time.Location) error {
	scope := dto.ToScopeResponse(summary.Scope)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Scope\t%s\n", scope.Label)
	fmt.Fprintf(tw, "Total income\t%s\n", summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(tw, "Total expenses\t%s\n", summary.TotalExpenses.StringFixed(2))
	fmt.Fprintf(tw, "Net profit\t%s\n", summary.NetProfit.StringFixed(2))
	fmt.Fprintf(tw, "Transactions\t%d\n", summary.TransactionCount)

	if len(summary.TopExpenses) > 0 {
		fmt.Fprintln(tw, "\nTop expenses\t\t\t\t")
		fmt.Fprintln(tw, "DATE\tCATEGORY\tSOURCE\tAMOUNT\tDESCRIPTION")
		for _, top := range summary.TopExpenses {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				top.Transaction.TransactionDate.In(loc).Format(dto.DateLayout),
				top.CategoryName,
				top.SourceName,
				top.Transaction.Amount.StringFixed(2),
				top.Transaction.Description,
			)
		}
	}

	for _, section := range []struct {
		title  string
		totals []entity.CategoryTotal
	}{
		{"Income by category", summary.IncomeByCategory},
		{"Expenses by category", summary.ExpensesByCategory},
	} {
		if len(section.totals) == 0 {
			continue
		}
		fmt.Fprintf(tw, "\n%s\t\t\n", section.title)
		fmt.Fprintln(tw, "CATEGORY\tCOUNT\tTOTAL")
		for _, t := range section.totals {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", t.CategoryName, t.TransactionCount, t.Total.StringFixed(2))
		}
	}

	if len(summary.ExpensesByEmployee) > 0 {
		fmt.Fprintln(tw, "\nExpenses by employee\t\t")
		fmt.Fprintln(tw, "EMPLOYEE\tCOUNT\tTOTAL")
		for _, e := range summary.ExpensesByEmployee {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", e.EmployeeID, e.TransactionCount, e.Total.StringFixed(2))
		}
	}

	return tw.Flush()
}
