package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// HistoryRepository stores validation run summaries.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Insert records one validation run.
func (r *HistoryRepository) Insert(ctx context.Context, run models.ValidationRun) error {
	query := `
		INSERT INTO validation_runs
			(id, created_at, entity_count, relationship_count, error_count,
			 warning_count, info_count, fixes_applied, success)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		run.ID, run.CreatedAt, run.EntityCount, run.RelationshipCount,
		run.ErrorCount, run.WarningCount, run.InfoCount, run.FixesApplied,
		run.Success)
	return err
}

// List returns the most recent runs, newest first.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]models.ValidationRun, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, created_at, entity_count, relationship_count, error_count,
			warning_count, info_count, fixes_applied, success
		FROM validation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.ValidationRun
	for rows.Next() {
		var run models.ValidationRun
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.EntityCount,
			&run.RelationshipCount, &run.ErrorCount, &run.WarningCount,
			&run.InfoCount, &run.FixesApplied, &run.Success); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// GetByID returns one run, or nil when no run with that id exists.
func (r *HistoryRepository) GetByID(ctx context.Context, id string) (*models.ValidationRun, error) {
	query := `
		SELECT id, created_at, entity_count, relationship_count, error_count,
			warning_count, info_count, fixes_applied, success
		FROM validation_runs
		WHERE id = $1
	`

	var run models.ValidationRun
	err := r.pool.QueryRow(ctx, query, id).Scan(&run.ID, &run.CreatedAt,
		&run.EntityCount, &run.RelationshipCount, &run.ErrorCount,
		&run.WarningCount, &run.InfoCount, &run.FixesApplied, &run.Success)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &run, nil
}
