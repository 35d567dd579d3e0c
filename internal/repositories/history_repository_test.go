package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/LuiseFreese/mermaid-sub012/internal/database"
	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/repositories"
)

// startRepository spins up a throwaway Postgres container and returns a
// repository bound to it. Skipped when Docker is not available.
func startRepository(t *testing.T) *repositories.HistoryRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("erd_validation"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.ConnectDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool))
	return repositories.NewHistoryRepository(pool)
}

func newRun(createdAt time.Time) models.ValidationRun {
	return models.ValidationRun{
		ID:                uuid.New(),
		CreatedAt:         createdAt,
		EntityCount:       2,
		RelationshipCount: 1,
		ErrorCount:        1,
		WarningCount:      2,
		InfoCount:         0,
		FixesApplied:      1,
		Success:           false,
	}
}

func TestHistoryRepositoryInsertAndGet(t *testing.T) {
	repo := startRepository(t)
	ctx := context.Background()

	run := newRun(time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, repo.Insert(ctx, run))

	got, err := repo.GetByID(ctx, run.ID.String())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.EntityCount, got.EntityCount)
	assert.Equal(t, run.RelationshipCount, got.RelationshipCount)
	assert.Equal(t, run.ErrorCount, got.ErrorCount)
	assert.Equal(t, run.FixesApplied, got.FixesApplied)
	assert.Equal(t, run.Success, got.Success)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestHistoryRepositoryGetMissingRun(t *testing.T) {
	repo := startRepository(t)

	got, err := repo.GetByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHistoryRepositoryListNewestFirst(t *testing.T) {
	repo := startRepository(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	older := newRun(base.Add(-time.Hour))
	newer := newRun(base)
	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestHistoryRepositoryListDefaultLimit(t *testing.T) {
	repo := startRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newRun(time.Now().UTC())))

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
