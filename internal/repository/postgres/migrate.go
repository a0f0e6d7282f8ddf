package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending up migration, each in its own transaction.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.connection.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations: %v", err)
	}

	files, err := upMigrations()
	if err != nil {
		return err
	}

	for _, name := range files {
		var applied bool
		err := r.connection.GetContext(ctx, &applied, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name)
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %v", name, err)
		}
		if applied {
			continue
		}

		contents, err := migrations.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", name, err)
		}

		err = r.WithTx(ctx, func(ctx context.Context) error {
			if _, err := r.Chk(ctx).ExecContext(ctx, string(contents)); err != nil {
				return fmt.Errorf("failed to execute migration %s: %v", name, err)
			}
			_, err := r.Chk(ctx).ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func upMigrations() ([]string, error) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %v", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
