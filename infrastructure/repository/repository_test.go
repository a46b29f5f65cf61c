package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
	"github.com/vfg2006/brand-projection-api/infrastructure/migration"
	"github.com/vfg2006/brand-projection-api/internal/config"
)

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := database.NewConnection(ctx, config.Database{
		Driver:     database.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, migration.Apply(ctx, conn))

	return conn
}
