package validators

import (
	"fmt"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// CDMRegistry is the injected capability answering whether a name collides
// with a standard Common Data Model entity.
type CDMRegistry interface {
	IsCDMEntity(name string) (string, bool)
}

// CDMValidator flags entities whose name matches a standard CDM entity.
// Whether to reuse the standard entity or rename the custom one is a user
// decision, so the finding is informational and never auto-fixed.
type CDMValidator struct {
	registry CDMRegistry
}

func NewCDMValidator(registry CDMRegistry) *CDMValidator {
	if registry == nil {
		panic("validators: CDMValidator requires a registry")
	}
	return &CDMValidator{registry: registry}
}

func (v *CDMValidator) Name() string { return "cdm" }

func (v *CDMValidator) Validate(entities []models.Entity, _ []models.Relationship, _ string) []models.Warning {
	var warnings []models.Warning

	for _, e := range entities {
		cdmName, ok := v.registry.IsCDMEntity(e.Name)
		if !ok {
			continue
		}
		warnings = append(warnings, models.Warning{
			Type:        models.WarningTypeCDM,
			Category:    CategoryNaming,
			Severity:    models.SeverityInfo,
			Entity:      e.Name,
			Message:     fmt.Sprintf("Entity '%s' matches the Common Data Model entity '%s'", e.Name, cdmName),
			Suggestion:  "Consider reusing the standard CDM entity instead of creating a custom table.",
			AutoFixable: false,
		})
	}
	return warnings
}
