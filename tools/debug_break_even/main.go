package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	calc "github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// Prints each loan's schedule next to the payoff count so the two month
// counts can be compared, optionally with an extra monthly payment.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <loan-file> [extra-monthly-payment]")
		return
	}
	extra := 0.0
	if len(os.Args) > 2 {
		v, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			panic(err)
		}
		extra = v
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	cfg.IncludeSchedule = true

	engine := calc.NewCalculationEngine()
	engine.Debug = true
	engine.SetLogger(logger.Sugar())
	report, err := engine.RunLoans(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	for _, a := range report.Analyses {
		printLoan(a, extra)
	}
}

func printLoan(a domain.LoanAnalysis, extra float64) {
	fmt.Printf("# %s\n", a.Name)
	fmt.Println("Period,Payment,Principal,Interest,Remaining")
	for _, e := range a.Schedule.Entries {
		fmt.Printf("%d,%.2f,%.2f,%.2f,%.6f\n", e.Period, e.Payment, e.PrincipalPortion, e.InterestPortion, e.RemainingPrincipal)
	}

	payment := a.Amortization.PeriodicPayment + extra
	months, err := calc.CalculateBreakEvenMonths(a.Terms.Principal, a.Terms.MonthlyRate(), payment)
	fmt.Printf("\nSchedule: %d periods, converged=%v, final balance=%.9f, interest=%.2f (summary %.2f)\n",
		len(a.Schedule.Entries), a.Schedule.Converged, a.Schedule.FinalBalance(), a.Schedule.TotalInterest(), a.Amortization.TotalInterest)
	fmt.Printf("Payoff at %.2f/month: %d months, err=%v\n\n", payment, months, err)
}
