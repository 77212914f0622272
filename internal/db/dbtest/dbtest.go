// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"         // DSN formatting
	"strings"     // Name sanitizing
	"sync/atomic" // Unique database names
	"testing"     // Test helpers

	"notes_system/internal/db" // Connection and migration

	"github.com/glebarez/sqlite" // Pure Go SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

var seq atomic.Int64

// New returns a migrated in-memory SQLite database closed at test cleanup
func New(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, seq.Add(1))

	gdb, err := db.OpenDialector(sqlite.Open(dsn), true)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1) // One connection keeps the in-memory database alive and serialized
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gdb
}
