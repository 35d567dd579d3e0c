package models

// ValidationSummary aggregates one validation run.
type ValidationSummary struct {
	EntityCount       int      `json:"entityCount"`
	RelationshipCount int      `json:"relationshipCount"`
	ErrorCount        int      `json:"errorCount"`
	WarningCount      int      `json:"warningCount"`
	InfoCount         int      `json:"infoCount"`
	FixableCount      int      `json:"fixableCount"`
	FixesApplied      []string `json:"fixesApplied,omitempty"`
}

// ValidationResult is the consolidated output of the validation pipeline.
// CorrectedERD is only set when at least one auto-fix was applied; an empty
// value signals to callers that no rewrite occurred.
type ValidationResult struct {
	Success       bool              `json:"success"`
	Entities      []Entity          `json:"entities"`
	Relationships []Relationship    `json:"relationships"`
	Warnings      []Warning         `json:"warnings"`
	CorrectedERD  string            `json:"correctedErd,omitempty"`
	Summary       ValidationSummary `json:"summary"`
}

// FixResult is the outcome of a single fixer invocation. Precondition
// failures (entity not found, nothing to fix) are reported here, never as
// panics, so the caller keeps the original text and a user-facing message.
type FixResult struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
