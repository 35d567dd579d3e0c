package services

import (
	"fmt"
	"sort"

	"github.com/LuiseFreese/mermaid-sub012/internal/fixers"
	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/parser"
	"github.com/LuiseFreese/mermaid-sub012/internal/validators"
)

// MaxContentLength bounds the ERD text a single validation run accepts.
// Oversized input is rejected before any pattern matching happens, which is
// the mitigation for pathological regex input rather than locking or
// scheduling: each run is stateless and safe to invoke concurrently.
const MaxContentLength = 1 << 20

// fixOrder is the order auto-fixes are applied in. The one constraint that
// matters is that duplicate-column fixes run before duplicate-relationship
// fixes: relationship spans depend on entity names, which column fixes never
// alter.
var fixOrder = map[string]int{
	models.WarningTypeDuplicateColumn:       0,
	models.WarningTypeNaming:                1,
	models.WarningTypeStatus:                2,
	models.WarningTypeDuplicateRelationship: 3,
}

// ValidationService is the validation pipeline entry point: tokenize once,
// run every rule validator in a fixed order, fingerprint and deduplicate the
// findings, and optionally apply all auto-fixes. It holds no per-run state.
type ValidationService struct {
	validators []validators.Validator
	cdm        validators.CDMRegistry
}

// NewValidationService wires the full validator set against the given CDM
// registry.
func NewValidationService(registry validators.CDMRegistry) *ValidationService {
	if registry == nil {
		panic("services: ValidationService requires a CDM registry")
	}
	return &ValidationService{
		validators: validators.All(registry),
		cdm:        registry,
	}
}

// Validate runs the whole pipeline over raw ERD text. When autoFix is set,
// fixers are applied for every auto-fixable warning and the rewritten text is
// returned in CorrectedERD; without any applied fix CorrectedERD stays empty.
// The returned warnings always describe the input text, not the corrected
// one.
func (s *ValidationService) Validate(content string, autoFix bool) *models.ValidationResult {
	if len(content) > MaxContentLength {
		w := models.Warning{
			Type:     models.WarningTypeSyntax,
			Category: validators.CategorySyntax,
			Severity: models.SeverityError,
			Message:  fmt.Sprintf("ERD content exceeds the maximum size of %d bytes", MaxContentLength),
		}
		w.ID = validators.Fingerprint(w)
		return &models.ValidationResult{
			Success:  false,
			Warnings: []models.Warning{w},
			Summary:  models.ValidationSummary{ErrorCount: 1},
		}
	}

	entities := parser.TokenizeEntities(content)
	relationships := parser.ExtractRelationships(content)

	var warnings []models.Warning
	for _, v := range s.validators {
		for _, w := range v.Validate(entities, relationships, content) {
			w.ID = validators.Fingerprint(w)
			if validators.IsSuppressed(w.ID) {
				continue
			}
			warnings = append(warnings, w)
		}
	}

	for i := range entities {
		_, entities[i].IsCDMCandidate = s.cdm.IsCDMEntity(entities[i].Name)
	}

	result := &models.ValidationResult{
		Entities:      entities,
		Relationships: relationships,
		Warnings:      warnings,
		Summary:       summarize(entities, relationships, warnings),
	}

	if autoFix {
		corrected, applied := s.applyFixes(content, warnings)
		if len(applied) > 0 {
			result.CorrectedERD = corrected
			result.Summary.FixesApplied = applied
		}
	}

	result.Success = result.Summary.ErrorCount == 0
	return result
}

// Fix applies the fixer for a single warning to raw ERD text.
func (s *ValidationService) Fix(content string, warning models.Warning) models.FixResult {
	if len(content) > MaxContentLength {
		return models.FixResult{
			Success: false,
			Error:   fmt.Sprintf("ERD content exceeds the maximum size of %d bytes", MaxContentLength),
		}
	}
	fixer, ok := fixers.ForWarning(warning.Type)
	if !ok {
		return models.FixResult{
			Success: false,
			Error:   fmt.Sprintf("warnings of type '%s' cannot be fixed automatically", warning.Type),
		}
	}
	return fixer.Fix(content, warning)
}

// applyFixes runs the fixer of every auto-fixable warning against the
// evolving text. Each fixer re-tokenizes what it receives, so fixes chain
// safely; a fixer that finds its defect already gone simply reports failure
// and is skipped.
func (s *ValidationService) applyFixes(content string, warnings []models.Warning) (string, []string) {
	fixable := make([]models.Warning, 0, len(warnings))
	for _, w := range warnings {
		if w.AutoFixable {
			fixable = append(fixable, w)
		}
	}
	sort.SliceStable(fixable, func(i, j int) bool {
		return fixOrder[fixable[i].Type] < fixOrder[fixable[j].Type]
	})

	var applied []string
	current := content
	for _, w := range fixable {
		fixer, ok := fixers.ForWarning(w.Type)
		if !ok {
			continue
		}
		res := fixer.Fix(current, w)
		if !res.Success {
			continue
		}
		current = res.Data
		applied = append(applied, res.Message)
	}
	return current, applied
}

func summarize(entities []models.Entity, relationships []models.Relationship, warnings []models.Warning) models.ValidationSummary {
	summary := models.ValidationSummary{
		EntityCount:       len(entities),
		RelationshipCount: len(relationships),
	}
	for _, w := range warnings {
		switch w.Severity {
		case models.SeverityError:
			summary.ErrorCount++
		case models.SeverityWarning:
			summary.WarningCount++
		case models.SeverityInfo:
			summary.InfoCount++
		}
		if w.AutoFixable {
			summary.FixableCount++
		}
	}
	return summary
}
