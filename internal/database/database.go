package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type DB struct {
	*sqlx.DB
}

// NewDB opens the remote store and applies pending migrations
func NewDB(driver, dsn string) (*DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if dsn == "" {
		return nil, errors.New("database dsn cannot be empty")
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer, and ":memory:" databases are per connection
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	dbWrapper := &DB{DB: db}

	if err := dbWrapper.migrate(driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return dbWrapper, nil
}

func (db *DB) migrate(driver string) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(driver); err != nil {
		return err
	}

	return goose.Up(db.DB.DB, "migrations")
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
