package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogapi/internal/config"
)

// Open establishes the database connection described by cfg and applies
// no migrations; call Migrate separately (startup honors DB_RUN_MIGRATE).
// With cfg.InMemory set it opens an in-process SQLite engine, otherwise
// a Postgres connection with the configured pool tuning.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.InMemory {
		return OpenInMemory("app")
	}

	sslMode := "disable"
	if cfg.SSL {
		sslMode = "require"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslMode)

	d, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		_ = Close(d)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = Close(d)
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return d, nil
}

// OpenInMemory opens a named in-memory SQLite database.
// A shared cache memory database lets multiple connections share the same DB.
func OpenInMemory(name string) (*gorm.DB, error) {
	dsn := "file:" + name + "?mode=memory&cache=shared"
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite keeps the in-memory database alive only while at least one
	// connection is open; pin a single connection.
	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	// Foreign keys are off by default in SQLite; cascade deletes need them.
	if err := d.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
		_ = Close(d)
		return nil, err
	}
	return d, nil
}

// Close releases the underlying connection pool.
func Close(d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping issues a trivial probe against the store. Used by the health endpoint.
func Ping(d *gorm.DB) error {
	return d.Exec(`SELECT 1`).Error
}
