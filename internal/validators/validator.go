// Package validators implements the rule validators of the ERD validation
// engine. Each validator is independent and pure: it reads the tokenized
// entities, the extracted relationships and the raw text, and emits zero or
// more warnings without mutating anything.
package validators

import "github.com/LuiseFreese/mermaid-sub012/internal/models"

// Warning categories.
const (
	CategoryStructure = "structure"
	CategoryNaming    = "naming"
	CategoryChoices   = "choices"
	CategorySyntax    = "syntax"
)

// Validator is one validation rule. Implementations must be safe for
// concurrent use; they hold no per-run state.
type Validator interface {
	Name() string
	Validate(entities []models.Entity, relationships []models.Relationship, content string) []models.Warning
}

// All returns the full validator set in the fixed order the orchestrator runs
// them. The order only determines warning array order; the rules are
// independent of each other.
func All(registry CDMRegistry) []Validator {
	return []Validator{
		NewEntityStructureValidator(),
		NewRelationshipValidator(),
		NewPrimaryKeyValidator(),
		NewNamingValidator(),
		NewCDMValidator(registry),
		NewChoiceColumnValidator(),
	}
}
