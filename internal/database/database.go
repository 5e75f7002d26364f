package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func dialectName(dsn string) string {
	if isPostgres(dsn) {
		return "postgres"
	}
	return "sqlite"
}

func isInMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func dialector(dsn string) (gorm.Dialector, error) {
	if isPostgres(dsn) {
		return postgres.Open(dsn), nil
	}

	if !isInMemory(dsn) {
		path := strings.TrimPrefix(dsn, "file:")
		if i := strings.Index(path, "?"); i >= 0 {
			path = path[:i]
		}
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	return sqlite.Open(dsn), nil
}

// NewDatabase opens the store named by dsn and migrates it to the latest
// schema. Postgres URLs use the postgres driver; anything else is treated as a
// SQLite path. Calling it against an already initialized store is a no-op
// beyond opening the connection.
func NewDatabase(dsn string) (*gorm.DB, error) {
	d, err := dialector(dsn)
	if err != nil {
		return nil, &StoreInitError{Dialect: dialectName(dsn), Err: err}
	}

	db, err := gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, &StoreInitError{Dialect: dialectName(dsn), Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &StoreInitError{Dialect: dialectName(dsn), Err: err}
	}

	if db.Dialector.Name() == "sqlite" {
		// SQLite only supports one writer, and an in-memory database lives only as
		// long as its connection.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, &StoreInitError{Dialect: dialectName(dsn), Err: err}
	}

	if err := GetMigrator(db).Migrate(); err != nil {
		sqlDB.Close()
		return nil, &StoreInitError{Dialect: dialectName(dsn), Err: fmt.Errorf("error migrating database: %w", err)}
	}

	slog.Info("database initialized", "dialect", db.Dialector.Name())
	return db, nil
}
