package database

import (
	"context"
	"database/sql"
	"testing"

	"cricauction-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	for _, tc := range []struct {
		driver string
		name   string
	}{
		{"", "postgres"},
		{"postgres", "postgres"},
		{"mysql", "mysql"},
		{"sqlite", "sqlite"},
	} {
		d, err := Dialector(tc.driver, "dsn")
		require.NoError(t, err)
		assert.Equal(t, tc.name, d.Name())
	}

	_, err := Dialector("oracle", "dsn")
	assert.Error(t, err)
}

func TestInitializeSQLite(t *testing.T) {
	db, err := Initialize("file::memory:", &Options{Driver: "sqlite", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, Ping(db))

	for _, m := range []interface{}{&models.User{}, &models.Auction{}, &models.Team{}, &models.Player{}, &models.Bidder{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "auction.db?_foreign_keys=1", withForeignKeys("auction.db"))
	assert.Equal(t, "file:x?mode=memory&cache=shared&_foreign_keys=1", withForeignKeys("file:x?mode=memory&cache=shared"))
	assert.Equal(t, "auction.db?_fk=1", withForeignKeys("auction.db?_fk=1"))
}

func TestSQLiteForeignKeysOnEveryConnection(t *testing.T) {
	db, err := Initialize("file:fk_pool?mode=memory&cache=shared", &Options{Driver: "sqlite", MaxOpenConns: 3})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	ctx := context.Background()
	first, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, conn := range []*sql.Conn{first, second} {
		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	}
}
