package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/repositories"
)

// ErrHistoryDisabled is returned when no database is configured for the
// validation-history store.
var ErrHistoryDisabled = errors.New("validation history is not enabled")

// HistoryService records validation run summaries. It tolerates running
// without a repository so the engine stays usable on hosts without a
// database.
type HistoryService struct {
	repo *repositories.HistoryRepository
}

func NewHistoryService(repo *repositories.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Enabled reports whether run history is being recorded.
func (s *HistoryService) Enabled() bool {
	return s.repo != nil
}

// Record stores the summary of one validation result and returns the new
// run id.
func (s *HistoryService) Record(ctx context.Context, result *models.ValidationResult) (uuid.UUID, error) {
	if !s.Enabled() {
		return uuid.Nil, ErrHistoryDisabled
	}

	run := models.ValidationRun{
		ID:                uuid.New(),
		CreatedAt:         time.Now().UTC(),
		EntityCount:       result.Summary.EntityCount,
		RelationshipCount: result.Summary.RelationshipCount,
		ErrorCount:        result.Summary.ErrorCount,
		WarningCount:      result.Summary.WarningCount,
		InfoCount:         result.Summary.InfoCount,
		FixesApplied:      len(result.Summary.FixesApplied),
		Success:           result.Success,
	}
	if err := s.repo.Insert(ctx, run); err != nil {
		return uuid.Nil, err
	}
	return run.ID, nil
}

// List returns the most recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]models.ValidationRun, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}
	return s.repo.List(ctx, limit)
}

// Get returns one run by id, or nil when it does not exist.
func (s *HistoryService) Get(ctx context.Context, id string) (*models.ValidationRun, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}
	return s.repo.GetByID(ctx, id)
}
