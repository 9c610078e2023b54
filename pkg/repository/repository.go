// Package repository is the sqlite store of articles, scraping jobs and feature settings.
package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql migrations.sql
var schemaFS embed.FS

const defaultDSN = "file:pushhub.db?cache=shared&mode=rwc&_txlock=immediate"

// connection settings applied to every new database handle
var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA temp_store = MEMORY",
	"PRAGMA busy_timeout = 5000",
}

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances sharing one connection pool.
// Constructed once per process and reused across runs.
type Repositories struct {
	Article *ArticleRepository
	Job     *JobRepository
	Setting *SettingRepository
	DB      *sqlx.DB
}

// NewRepositories opens the database, brings the schema up to date and makes all repositories
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	db, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Repositories{
		Article: NewArticleRepository(db),
		Job:     NewJobRepository(db),
		Setting: NewSettingRepository(db),
		DB:      db,
	}, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	if cfg.DSN == "" {
		cfg.DSN = defaultDSN
	}
	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", p, err)
		}
	}
	return db, nil
}

// migrate creates missing tables and applies migrations.sql statement by statement.
// Safe to run on every start.
func migrate(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	migrations, err := schemaFS.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	for _, stmt := range splitMigrationStatements(string(migrations)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil && !alreadyApplied(err) {
			return fmt.Errorf("run migration %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// alreadyApplied detects errors of statements re-run against an up to date schema
func alreadyApplied(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column")
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}

// splitMigrationStatements splits a migration script into statements on trailing semicolons.
// Trigger bodies are kept whole until their closing END;
func splitMigrationStatements(migrations string) []string {
	var statements []string
	var buf strings.Builder
	inBody := false

	flush := func() {
		if stmt := strings.TrimSpace(buf.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		buf.Reset()
	}

	for _, line := range strings.Split(migrations, "\n") {
		trimmed := strings.TrimSpace(line)
		if buf.Len() == 0 && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(trimmed), "CREATE TRIGGER") {
			inBody = true
		}
		buf.WriteString(line)
		buf.WriteByte('\n')

		if !strings.HasSuffix(trimmed, ";") {
			continue
		}
		if inBody && !strings.EqualFold(trimmed, "END;") {
			continue
		}
		inBody = false
		flush()
	}
	flush()
	return statements
}
