package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	debug     bool
	logLevel  string
	format    string
	outputDir string

	log    *zap.SugaredLogger
	engine *calculation.CalculationEngine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "loancalc",
		Short: "Loan amortization and investment comparison calculator",
		Long: `loancalc computes the fixed monthly payment of an amortizing loan and
compares the loan's cost with what the same principal would earn in an index
fund under conservative, historical and optimistic growth scenarios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log every scenario derivation")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn, info for serve and watch)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: console, console-lite, csv, detailed-csv, html, json, pdf, all")
	root.PersistentFlags().StringVarP(&a.outputDir, "output-dir", "o", "", "Write reports to this directory instead of stdout")

	root.AddCommand(
		a.calculateCmd(),
		a.scheduleCmd(),
		a.payoffCmd(),
		a.compareCmd(),
		a.scenariosCmd(),
		a.serveCmd(),
		a.watchCmd(),
		a.exampleConfigCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := a.logLevel
	if level == "" && !a.debug {
		switch cmd.Name() {
		case "serve", "watch":
			level = "info"
		default:
			level = "warn"
		}
	}
	log, err := logging.New(logging.Level(a.debug, level), a.debug)
	if err != nil {
		return err
	}
	a.log = log
	a.engine = calculation.NewCalculationEngine()
	a.engine.Debug = a.debug
	a.engine.SetLogger(log)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "loancalc %s\n", version)
		},
	}
}
