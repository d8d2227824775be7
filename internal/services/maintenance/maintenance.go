package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Config controls how frequently store maintenance runs.
type Config struct {
	Interval time.Duration
}

// Service periodically checkpoints the SQLite WAL and refreshes the query
// planner statistics. Neither touches row data; this is pure housekeeping so
// the WAL file does not grow without bound under a long-lived process.
type Service struct {
	db     *sql.DB
	logger *zap.Logger
	cron   *cron.Cron
	cfg    Config
}

func New(db *sql.DB, logger *zap.Logger, cfg Config) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		db:     db,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := s.Run(ctx); err != nil {
			s.logger.Error("store maintenance failed", zap.Error(err))
		}
	})

	return s
}

// Run executes one maintenance pass.
func (s *Service) Run(ctx context.Context) error {
	var busy, checkpointed, total int
	row := s.db.QueryRowContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`)
	if err := row.Scan(&busy, &checkpointed, &total); err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `PRAGMA optimize`); err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	s.logger.Debug("store maintenance pass complete",
		zap.Int("wal_frames", total),
		zap.Int("wal_checkpointed", checkpointed))
	return nil
}

// Start launches the cron scheduler.
func (s *Service) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("maintenance service started",
		zap.Duration("interval", s.cfg.Interval))
}

// Stop gracefully stops the scheduler, waiting for an in-flight pass.
func (s *Service) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("maintenance service stopped")
}
