package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the validation-history schema. Every step is
// idempotent, so running migrations on every startup is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createValidationRunsTable,
		indexValidationRunsCreatedAt,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const createValidationRunsTable = `
CREATE TABLE IF NOT EXISTS validation_runs (
  id                 UUID PRIMARY KEY,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  entity_count       INT NOT NULL,
  relationship_count INT NOT NULL,
  error_count        INT NOT NULL,
  warning_count      INT NOT NULL,
  info_count         INT NOT NULL,
  fixes_applied      INT NOT NULL,
  success            BOOLEAN NOT NULL
);
`

const indexValidationRunsCreatedAt = `
CREATE INDEX IF NOT EXISTS idx_validation_runs_created_at ON validation_runs(created_at);
`
