package validators

import (
	"fmt"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// PrimaryKeyValidator flags entities that declare no PK column. There is no
// auto-fix: which column should become the key is not decidable from the
// diagram alone.
type PrimaryKeyValidator struct{}

func NewPrimaryKeyValidator() *PrimaryKeyValidator {
	return &PrimaryKeyValidator{}
}

func (v *PrimaryKeyValidator) Name() string { return "primary-key" }

func (v *PrimaryKeyValidator) Validate(entities []models.Entity, _ []models.Relationship, _ string) []models.Warning {
	var warnings []models.Warning

	for _, e := range entities {
		if len(e.Attributes) == 0 {
			// Attribute-less blocks are a diagram sketch, not a table yet.
			continue
		}
		hasPK := false
		for _, a := range e.Attributes {
			if a.IsPrimaryKey() {
				hasPK = true
				break
			}
		}
		if hasPK {
			continue
		}

		warnings = append(warnings, models.Warning{
			Type:        models.WarningTypePrimaryKey,
			Category:    CategoryStructure,
			Severity:    models.SeverityWarning,
			Entity:      e.Name,
			Message:     fmt.Sprintf("Entity '%s' has no primary key column", e.Name),
			Suggestion:  "Mark exactly one column with PK.",
			AutoFixable: false,
		})
	}
	return warnings
}
