package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/meetingagent/todo-service/internal/config"
)

// Open creates the database folder if needed and opens the single SQLite file
// backing the store. The handle is opened once per process and shared; WAL
// journaling lets readers proceed while a writer is in flight, and the busy
// timeout serializes conflicting writers instead of failing them.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(cfg.Folder, 0o755); err != nil {
		return nil, fmt.Errorf("create database folder: %w", err)
	}

	db, err := sql.Open("sqlite3", DSN(cfg.Path(), cfg.BusyTimeout.Milliseconds()))
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite store opened", zap.String("path", cfg.Path()))
	return db, nil
}

// DSN builds the connection string with the pragmas the store relies on:
// WAL for write-ahead durability, foreign keys on, NORMAL sync (safe under WAL).
func DSN(path string, busyTimeoutMs int64) string {
	return fmt.Sprintf(
		"file:%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on&_busy_timeout=%d",
		filepath.ToSlash(path), busyTimeoutMs,
	)
}
