package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/internal/output"
)

const dateLayout = "2006-01-02"

func (a *app) calculateCmd() *cobra.Command {
	var withSchedule bool
	cmd := &cobra.Command{
		Use:   "calculate [loan-file]",
		Short: "Analyze every loan in a loan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if withSchedule {
				cfg.IncludeSchedule = true
			}
			report, err := a.engine.RunLoans(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.render(cmd, report, a.formatOr(cfg.DefaultFormat, "console"))
		},
	}
	cmd.Flags().BoolVar(&withSchedule, "schedule", false, "Include the full amortization schedule")
	return cmd
}

func (a *app) scheduleCmd() *cobra.Command {
	var principal, rate, years, name, start, asOf string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the payment-by-payment schedule of one loan",
		Long: `Print the amortization schedule of one loan. Values may carry "$", "%" and
thousands separators; missing, zero or invalid values fall back to a
$30,000 loan at 3% over 10 years.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loan := domain.Loan{Name: name, Terms: config.SanitizeInputs(principal, rate, years)}
			if start != "" {
				d, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("--start: %w", err)
				}
				loan.StartDate = &d
			}

			analysis, err := a.engine.Analyze(cmd.Context(), loan, true)
			if err != nil {
				return err
			}

			if asOf != "" {
				if loan.StartDate == nil {
					return errors.New("--as-of requires --start")
				}
				at, err := time.Parse(dateLayout, asOf)
				if err != nil {
					return fmt.Errorf("--as-of: %w", err)
				}
				paid, balance := calculation.BalanceAsOf(*analysis.Schedule, loan.Terms.Principal, *loan.StartDate, at)
				fmt.Fprintf(cmd.OutOrStdout(), "As of %s: %d of %d payments made, %s remaining\n",
					asOf, paid, len(analysis.Schedule.Entries), output.FormatCurrency(balance))
				return nil
			}

			report := &domain.AnalysisReport{Analyses: []domain.LoanAnalysis{*analysis}, Assumptions: calculation.GenerateAssumptions()}
			return a.render(cmd, report, a.formatOr("detailed-csv"))
		},
	}
	cmd.Flags().StringVar(&name, "name", "Loan", "Loan name")
	cmd.Flags().StringVar(&principal, "principal", "", "Loan principal, e.g. 30000 or $30,000")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent, e.g. 3 or 3%")
	cmd.Flags().StringVar(&years, "years", "", "Term in years")
	cmd.Flags().StringVar(&start, "start", "", "Loan start date (YYYY-MM-DD); due dates follow monthly")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Only report the balance outstanding on this date (YYYY-MM-DD)")
	return cmd
}

func (a *app) payoffCmd() *cobra.Command {
	var principal, rate, payment float64
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Count the months a fixed payment takes to retire a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(principal > 0) || !(payment > 0) || !(rate >= 0) {
				return errors.New("--principal and --payment must be positive and --rate cannot be negative")
			}
			terms := domain.LoanTerms{Principal: principal, AnnualRatePercent: rate, TermYears: 1}
			months, err := calculation.CalculateBreakEvenMonths(principal, terms.MonthlyRate(), payment)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paying %s/month retires %s at %s in %d months (%.1f years)\n",
				output.FormatCurrency(payment), output.FormatCurrency(principal), output.FormatPercent(rate, 1),
				months, float64(months)/12)
			return nil
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", config.DefaultPrincipal, "Loan principal")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultAnnualRatePercent, "Annual interest rate in percent")
	cmd.Flags().Float64Var(&payment, "payment", 0, "Monthly payment")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [loan-file]",
		Short: "Rank the loans in a loan file by monthly payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			cfg.IncludeSchedule = false
			report, err := a.engine.RunLoans(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-24s %14s %14s %14s\n", "RANK", "LOAN", "PAYMENT", "INTEREST", "NET MONTHLY")
			fmt.Fprintln(out, strings.Repeat("-", 74))
			for i, la := range calculation.CompareLoans(report.Analyses) {
				fmt.Fprintf(out, "%-4d %-24s %14s %14s %14s\n", i+1, la.Name,
					output.FormatCurrency(la.Amortization.PeriodicPayment),
					output.FormatCurrency(la.Amortization.TotalInterest),
					output.FormatCurrency(la.Default().NetMonthlyCashFlow))
			}
			return nil
		},
	}
}

func (a *app) scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the investment growth scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range domain.Scenarios() {
				marker := ""
				if s.Name == domain.DefaultScenario {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%-14s %-20s %s%s\n", s.Name, s.Label, output.FormatRate(s.AnnualGrowthRate, 1), marker)
			}
			return nil
		},
	}
}

func (a *app) exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [output-file]",
		Short: "Write a sample loan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "loans.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example loan file written to %s\n", filename)
			return nil
		},
	}
}

// formatOr returns the --format flag, else the first non-empty fallback.
func (a *app) formatOr(fallbacks ...string) string {
	if a.format != "" {
		return a.format
	}
	for _, f := range fallbacks {
		if f != "" {
			return f
		}
	}
	return "console"
}

// render prints text formats to stdout unless --output-dir is set; html, pdf
// and "all" always go to files.
func (a *app) render(cmd *cobra.Command, report *domain.AnalysisReport, format string) error {
	f := output.GetFormatterByName(format)
	if a.outputDir == "" && f != nil && isTextFormat(f) {
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	dir := a.outputDir
	if dir == "" {
		dir = "."
	}
	files, err := output.GenerateReport(report, format, dir)
	if err != nil {
		return err
	}
	for _, file := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", file)
	}
	return nil
}

func isTextFormat(f output.Formatter) bool {
	switch output.FileExtension(f) {
	case "txt", "csv", "json":
		return true
	}
	return false
}
