package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(SQLite, filepath.Join(t.TempDir(), "pastes.db"))
	require.NoError(t, err)

	return db
}

func TestOpenUnknownType(t *testing.T) {
	_, err := Open(Type("oracle"), "whatever")
	require.Error(t, err)
}

func TestMigrateCreatesPastesTable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))
	require.True(t, db.Migrator().HasTable("pastes"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))
	require.NoError(t, Migrate(db, SQLite))
}

func TestRollbackDropsPastesTable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))
	require.NoError(t, Rollback(db, SQLite))
	require.False(t, db.Migrator().HasTable("pastes"))
}

func TestStatus(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))
	require.NoError(t, Status(db, SQLite))
}

func TestSchemaRejectsNullText(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))

	now := time.Now().UTC()

	err := db.Exec(
		"INSERT INTO pastes (name, created_on, updated_on) VALUES (?, ?, ?)",
		"no text", now, now,
	).Error
	require.Error(t, err)
}

func TestSchemaAllowsNullName(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))

	now := time.Now().UTC()

	err := db.Exec(
		"INSERT INTO pastes (text, created_on, updated_on) VALUES (?, ?, ?)",
		"hello world", now, now,
	).Error
	require.NoError(t, err)
}
