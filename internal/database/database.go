package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/praython/djenofdjango/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Type string

const (
	PostgreSQL Type = "postgresql"
	SQLite     Type = "sqlite"
)

func Open(dbType Type, uri string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case SQLite:
		dialector = sqlite.Open(uri)
	case PostgreSQL:
		dialector = postgres.Open(uri)
	default:
		return nil, fmt.Errorf("unknown database type: %v", dbType)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

// Migrate applies pending migrations. It is idempotent and safe to run
// on every startup.
func Migrate(db *gorm.DB, dbType Type) error {
	return withGoose(db, dbType, goose.Up)
}

// Rollback reverts the most recent migration.
func Rollback(db *gorm.DB, dbType Type) error {
	return withGoose(db, dbType, goose.Down)
}

// Status prints the applied/pending state of every known migration.
func Status(db *gorm.DB, dbType Type) error {
	return withGoose(db, dbType, goose.Status)
}

const migrationLockID = 2018

func withGoose(db *gorm.DB, dbType Type, fn func(*sql.DB, string, ...goose.OptionsFunc) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	dialect, dir := "sqlite3", "sqlite"
	if dbType == PostgreSQL {
		dialect, dir = "postgres", "postgres"
	}

	if dbType == PostgreSQL {
		// blocking advisory lock so only one migration runs at a time
		ctx := context.Background()

		conn, err := sqlDB.Conn(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
			return err
		}

		defer func() {
			_, _ = conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID)
		}()
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return fn(sqlDB, dir)
}
