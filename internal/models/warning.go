package models

// Warning types emitted by the rule validators.
const (
	WarningTypeNaming                = "naming"
	WarningTypeChoice                = "choice"
	WarningTypeStatus                = "status"
	WarningTypePrimaryKey            = "primary-key"
	WarningTypeDuplicateColumn       = "duplicate-column"
	WarningTypeDuplicateRelationship = "duplicate-relationship"
	WarningTypeSyntax                = "syntax"
	WarningTypeCDM                   = "cdm"
)

// Warning severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Warning is a single validation finding. ID is a deterministic fingerprint
// of (Type, Entity, Attribute, Relationship, Message); it is derived, never
// stored across runs.
type Warning struct {
	ID           string                 `json:"id"`
	Type         string                 `json:"type"`
	Category     string                 `json:"category"`
	Severity     string                 `json:"severity"`
	Entity       string                 `json:"entity,omitempty"`
	Attribute    string                 `json:"attribute,omitempty"`
	Relationship string                 `json:"relationship,omitempty"`
	Message      string                 `json:"message"`
	Suggestion   string                 `json:"suggestion,omitempty"`
	AutoFixable  bool                   `json:"autoFixable"`
	FixData      map[string]interface{} `json:"fixData,omitempty"`
}
