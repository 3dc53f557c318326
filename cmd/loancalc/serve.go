package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadp "github.com/rpgo/loan-calculator/internal/adapter/http"
	"github.com/rpgo/loan-calculator/internal/cache"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/recorder"
	"github.com/rpgo/loan-calculator/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	var configPath, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator API. Settings come from the service block of --config
and LOANCALC_* environment variables. Results are cached in Redis when
LOANCALC_REDIS_ADDR is set and every calculation is kept in the history store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadServiceSettings(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				settings.Addr = addr
			}

			var resultCache cache.ResultCache = cache.NoopCache{}
			if settings.RedisAddr != "" {
				client, err := cache.OpenRedis(settings.RedisAddr, settings.RedisDB)
				if err != nil {
					a.log.Warnw("redis unavailable, caching disabled", "addr", settings.RedisAddr, "error", err)
				} else {
					defer client.Close()
					resultCache = cache.NewRedisResultCache(client, time.Duration(settings.CacheTTLSeconds)*time.Second)
				}
			}

			rec, err := recorder.Open(settings)
			if err != nil {
				a.log.Warnw("history store unavailable, using noop", "driver", settings.HistoryDriver, "error", err)
				rec = recorder.NewNoopRecorder()
			}
			defer rec.Close()

			e := httpadp.NewRouter(httpadp.NewHandler(a.engine, resultCache, rec, a.log), a.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Infow("listening", "addr", settings.Addr)
				if err := e.Start(settings.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info("shutdown signal received, stopping")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Loan file whose service block configures the server")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides settings)")
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	var runNow bool
	var cronSpec string
	cmd := &cobra.Command{
		Use:   "watch [loan-file]",
		Short: "Regenerate reports for a loan file on a cron schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadServiceSettings(args[0])
			if err != nil {
				return err
			}
			if cronSpec != "" {
				settings.WatchCron = cronSpec
			}
			dir := a.outputDir
			if dir == "" {
				dir = settings.ReportDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sched := scheduler.NewScheduler(ctx, a.engine, args[0], a.format, dir, a.log)
			if err := sched.Register(settings.WatchCron); err != nil {
				return err
			}
			if runNow {
				if _, err := sched.RunNow(); err != nil {
					return err
				}
			}
			sched.Start()
			<-ctx.Done()
			sched.Stop()
			return nil
		},
	}
	cmd.Flags().StringVar(&cronSpec, "cron", "", "Cron spec with seconds field (overrides settings)")
	cmd.Flags().BoolVar(&runNow, "run-now", false, "Write a report immediately before waiting for the schedule")
	return cmd
}
