package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/output"
)

// Scheduler re-reads a loan file on a cron schedule and writes fresh reports.
type Scheduler struct {
	Cron       *cron.Cron
	Engine     *calculation.CalculationEngine
	Parser     *config.InputParser
	ConfigPath string
	Format     string
	ReportDir  string
	Log        *zap.SugaredLogger
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler. Cron specs carry a seconds field.
func NewScheduler(ctx context.Context, engine *calculation.CalculationEngine, configPath, format, reportDir string, log *zap.SugaredLogger) *Scheduler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Engine:     engine,
		Parser:     config.NewInputParser(),
		ConfigPath: configPath,
		Format:     format,
		ReportDir:  reportDir,
		Log:        log,
		Ctx:        ctx,
	}
}

// Register adds the report job under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.reportTask); err != nil {
		return fmt.Errorf("register report task %q: %w", spec, err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Infow("scheduler started", "config", s.ConfigPath, "format", s.Format, "dir", s.ReportDir)
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// RunNow executes the report job immediately and returns the files written.
func (s *Scheduler) RunNow() ([]string, error) {
	cfg, err := s.Parser.LoadFromFile(s.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.ConfigPath, err)
	}
	report, err := s.Engine.RunLoans(s.Ctx, cfg)
	if err != nil {
		return nil, err
	}
	format := s.Format
	if format == "" {
		format = cfg.DefaultFormat
	}
	return output.GenerateReport(report, format, s.ReportDir)
}

func (s *Scheduler) reportTask() {
	s.Log.Info("running scheduled report")
	files, err := s.RunNow()
	if err != nil {
		s.Log.Errorw("scheduled report failed", "error", err)
		return
	}
	s.Log.Infow("scheduled report written", "files", files)
}
