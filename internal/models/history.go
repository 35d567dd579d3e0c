package models

import (
	"time"

	"github.com/google/uuid"
)

// ValidationRun is one recorded validation request. Only the outcome summary
// is kept; warnings are derived fresh on every validation and are never
// persisted.
type ValidationRun struct {
	ID                uuid.UUID `json:"id"`
	CreatedAt         time.Time `json:"createdAt"`
	EntityCount       int       `json:"entityCount"`
	RelationshipCount int       `json:"relationshipCount"`
	ErrorCount        int       `json:"errorCount"`
	WarningCount      int       `json:"warningCount"`
	InfoCount         int       `json:"infoCount"`
	FixesApplied      int       `json:"fixesApplied"`
	Success           bool      `json:"success"`
}
