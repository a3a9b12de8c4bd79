package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/print-shop/ledger/config"
)

func TestSQLiteConnection(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	database, err := NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck())

	for _, table := range []string{"categories", "sources", "transactions"} {
		assert.True(t, database.DB().Migrator().HasTable(table), table)
	}
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
