package validators

import (
	"fmt"
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// ChoiceColumnValidator checks choice and status columns. A `picklist` column
// is expected to list its options in the quoted description; a `status` typed
// column collides with the statecode/statuscode pair Dataverse manages itself
// and is safely rewritable to `picklist`.
type ChoiceColumnValidator struct{}

func NewChoiceColumnValidator() *ChoiceColumnValidator {
	return &ChoiceColumnValidator{}
}

func (v *ChoiceColumnValidator) Name() string { return "choice-column" }

func (v *ChoiceColumnValidator) Validate(entities []models.Entity, _ []models.Relationship, _ string) []models.Warning {
	var warnings []models.Warning

	for _, e := range entities {
		for _, a := range e.Attributes {
			switch strings.ToLower(a.Type) {
			case "picklist":
				if strings.TrimSpace(a.Description) != "" {
					continue
				}
				warnings = append(warnings, models.Warning{
					Type:        models.WarningTypeChoice,
					Category:    CategoryChoices,
					Severity:    models.SeverityWarning,
					Entity:      e.Name,
					Attribute:   a.Name,
					Message:     fmt.Sprintf("Choice column '%s' in entity '%s' does not list its options", a.Name, e.Name),
					Suggestion:  `Add a quoted description with comma-separated options, e.g. "Open, Closed".`,
					AutoFixable: false,
				})
			case "status":
				warnings = append(warnings, models.Warning{
					Type:        models.WarningTypeStatus,
					Category:    CategoryChoices,
					Severity:    models.SeverityWarning,
					Entity:      e.Name,
					Attribute:   a.Name,
					Message:     fmt.Sprintf("Column '%s' in entity '%s' uses the reserved type 'status'", a.Name, e.Name),
					Suggestion:  "Use a picklist column; Dataverse manages statecode and statuscode itself.",
					AutoFixable: true,
					FixData: map[string]interface{}{
						"entity":    e.Name,
						"attribute": a.Name,
						"fromType":  "status",
						"toType":    "picklist",
					},
				})
			}
		}
	}
	return warnings
}
