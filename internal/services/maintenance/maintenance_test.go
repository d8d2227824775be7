package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meetingagent/todo-service/internal/config"
	sqliteInfra "github.com/meetingagent/todo-service/internal/infrastructure/sqlite"
)

func TestRun_AgainstLiveStore(t *testing.T) {
	db, err := sqliteInfra.Open(context.Background(), config.DatabaseConfig{
		Folder:      t.TempDir(),
		Filename:    "todos.sqlite",
		BusyTimeout: time.Second,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqliteInfra.RunMigrations(db, nil))

	s := New(db, nil, Config{Interval: time.Hour})
	require.NoError(t, s.Run(context.Background()))
	// Checkpointing an already-clean WAL is still fine.
	require.NoError(t, s.Run(context.Background()))
}
