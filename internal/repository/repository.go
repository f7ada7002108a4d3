// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"retrohub/internal/config"
	"retrohub/internal/db/migrations"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("record not found")

// Repository provides access to the SQLite database.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens (and creates, if needed) the SQLite file named in cfg.
// It does not migrate; call EnsureSchemaBootstrapped or run "migrate up".
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	return goose.SetDialect("sqlite3")
}

// Migrate runs a goose command ("up", "down", "status") against the embedded migrations.
func (s *Repository) Migrate(command string) error {
	if err := setupGoose(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// The migrations are embedded, so "." is the root of the embedded FS.
	const dir = "."
	switch command {
	case "up":
		return goose.Up(s.DB, dir)
	case "down":
		return goose.Down(s.DB, dir)
	case "status":
		return goose.Status(s.DB, dir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

// EnsureSchemaBootstrapped migrates a brand-new database to the latest
// version. A database that already has a goose version table is left alone
// so upgrades stay an explicit "migrate up".
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	return s.Migrate("up")
}

// ValidateSchema fails when the database is behind the embedded migrations.
func (s *Repository) ValidateSchema() error {
	if err := setupGoose(); err != nil {
		return err
	}
	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	all, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	latest, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to determine latest migration: %w", err)
	}
	if current < latest.Version {
		return fmt.Errorf("database schema is outdated (version %d, expected %d); run 'retrohub migrate up'", current, latest.Version)
	}
	return nil
}
