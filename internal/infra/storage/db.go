package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open abre Postgres para el set de canales de IA. El bot hace pocas
// escrituras (una por /chatset), así que el pool es chico.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("ai_channels db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ai_channels db ping: %w", err)
	}
	return db, nil
}

func migrationsFS() (fs.FS, error) {
	return fs.Sub(migrations, "migrations")
}

// Migrate lleva el esquema de ai_channels a la última versión embebida.
// Devuelve cuántas migraciones aplicó.
func Migrate(ctx context.Context, db *sql.DB, log *slog.Logger) (int, error) {
	fsys, err := migrationsFS()
	if err != nil {
		return 0, err
	}
	p, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("ai_channels migrations: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("ai_channels migrate: %w", err)
	}
	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			"component", "storage", "version", r.Source.Version, "took", r.Duration)
	}
	return len(results), nil
}
