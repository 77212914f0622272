package db

import (
	"testing"

	"notes_system/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestDialectorByDriver(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			d, err := Dialector(&config.Config{DBDriver: driver, DBHost: "localhost", DBName: "notes", DBPath: ":memory:"})
			require.NoError(t, err)
			assert.Equal(t, driver, d.Name())
		})
	}
}

func TestMySQLDialectorReportsMatchedRows(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: "mysql", DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "notes"})
	require.NoError(t, err)
	my, ok := d.(*mysql.Dialector)
	require.True(t, ok)
	assert.Equal(t, "u:p@tcp(db:3306)/notes?charset=utf8mb4&parseTime=true&clientFoundRows=true", my.DSN)
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	gdb, err := Open(&config.Config{DBDriver: "sqlite", DBPath: "file:migrate_test?mode=memory&cache=shared", IsProd: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable("users"))
	assert.True(t, gdb.Migrator().HasTable("notes"))
}
