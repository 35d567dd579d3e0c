package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// identifierRe is the identifier shape entity and attribute names must have
// to survive schema generation.
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NamingValidator checks identifier shape and flags attributes whose name
// collides with their entity's name. The collision is auto-fixable (rename to
// `<name>_value`); invalid identifiers are not, since the intended name is
// unknowable.
type NamingValidator struct{}

func NewNamingValidator() *NamingValidator {
	return &NamingValidator{}
}

func (v *NamingValidator) Name() string { return "naming" }

func (v *NamingValidator) Validate(entities []models.Entity, _ []models.Relationship, _ string) []models.Warning {
	var warnings []models.Warning

	for _, e := range entities {
		if !identifierRe.MatchString(e.Name) {
			warnings = append(warnings, models.Warning{
				Type:        models.WarningTypeSyntax,
				Category:    CategorySyntax,
				Severity:    models.SeverityError,
				Entity:      e.Name,
				Message:     fmt.Sprintf("Entity name '%s' contains characters outside A-Za-z0-9_", e.Name),
				Suggestion:  "Rename the entity to a plain identifier.",
				AutoFixable: false,
			})
		}

		for _, a := range e.Attributes {
			if !identifierRe.MatchString(a.Name) {
				warnings = append(warnings, models.Warning{
					Type:        models.WarningTypeSyntax,
					Category:    CategorySyntax,
					Severity:    models.SeverityError,
					Entity:      e.Name,
					Attribute:   a.Name,
					Message:     fmt.Sprintf("Column name '%s' in entity '%s' contains characters outside A-Za-z0-9_", a.Name, e.Name),
					Suggestion:  "Rename the column to a plain identifier.",
					AutoFixable: false,
				})
				continue
			}

			if strings.EqualFold(a.Name, e.Name) {
				rename := a.Name + "_value"
				warnings = append(warnings, models.Warning{
					Type:        models.WarningTypeNaming,
					Category:    CategoryNaming,
					Severity:    models.SeverityWarning,
					Entity:      e.Name,
					Attribute:   a.Name,
					Message:     fmt.Sprintf("Column '%s' in entity '%s' conflicts with the entity name", a.Name, e.Name),
					Suggestion:  fmt.Sprintf("Rename the column to '%s'; Dataverse reserves the table name for its primary name column.", rename),
					AutoFixable: true,
					FixData: map[string]interface{}{
						"entity":    e.Name,
						"attribute": a.Name,
						"rename":    rename,
					},
				})
			}
		}
	}
	return warnings
}
