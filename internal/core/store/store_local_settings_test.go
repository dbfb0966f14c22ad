//go:build cgo

package store

import (
	"context"
	"testing"

	"github.com/briteline/briteline/internal/config"
	"github.com/stretchr/testify/require"
)

func TestOpenLocalStoreConfiguresSQLite(t *testing.T) {
	ctx := context.Background()

	cfg := config.StoreConfig{
		Path: "file:" + t.TempDir() + "/briteline.db",
	}

	store, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.Equal(t, 1, store.DB.Stats().MaxOpenConnections)

	var journalMode string
	require.NoError(t, store.DB.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode))
	require.Contains(t, journalMode, "wal")

	var busyTimeout int
	require.NoError(t, store.DB.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&busyTimeout))
	require.GreaterOrEqual(t, busyTimeout, 1000)

	var foreignKeys int
	require.NoError(t, store.DB.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
	require.Equal(t, 1, foreignKeys)
}
