package validators

import (
	"fmt"
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// ColumnGroup is one set of same-named attribute instances within an entity.
type ColumnGroup struct {
	Name      string
	Instances []models.Attribute
}

// DuplicateColumnGroups groups an entity's attributes by exact name and
// returns the groups with two or more instances, ordered by first occurrence.
// The duplicate-column fixer re-derives its groups through this same function
// so validator and fixer can never disagree on what counts as a duplicate.
func DuplicateColumnGroups(e models.Entity) []ColumnGroup {
	byName := make(map[string][]models.Attribute)
	var order []string

	for _, a := range e.Attributes {
		if _, seen := byName[a.Name]; !seen {
			order = append(order, a.Name)
		}
		byName[a.Name] = append(byName[a.Name], a)
	}

	var groups []ColumnGroup
	for _, name := range order {
		if instances := byName[name]; len(instances) >= 2 {
			groups = append(groups, ColumnGroup{Name: name, Instances: instances})
		}
	}
	return groups
}

// SelectBestColumn picks the surviving instance of a duplicate group: prefer
// an instance carrying a PK/FK constraint, then one with a non-empty
// description, then the first occurrence in source order. Returns the index
// into instances.
func SelectBestColumn(instances []models.Attribute) int {
	best := 0
	for i := 1; i < len(instances); i++ {
		if betterColumn(instances[i], instances[best]) {
			best = i
		}
	}
	return best
}

// betterColumn reports whether a should replace b as the surviving instance.
// Earlier instances win ties, so a only wins on a strictly stronger claim.
func betterColumn(a, b models.Attribute) bool {
	if a.HasConstraint() != b.HasConstraint() {
		return a.HasConstraint()
	}
	if (a.Description != "") != (b.Description != "") {
		return a.Description != ""
	}
	return false
}

// EntityStructureValidator detects duplicate column definitions and entities
// declaring more than one primary key.
type EntityStructureValidator struct{}

func NewEntityStructureValidator() *EntityStructureValidator {
	return &EntityStructureValidator{}
}

func (v *EntityStructureValidator) Name() string { return "entity-structure" }

func (v *EntityStructureValidator) Validate(entities []models.Entity, _ []models.Relationship, _ string) []models.Warning {
	var warnings []models.Warning

	for _, e := range entities {
		if w, ok := v.checkDuplicateColumns(e); ok {
			warnings = append(warnings, w)
		}
		if w, ok := v.checkMultiplePrimaryKeys(e); ok {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// checkDuplicateColumns emits one warning per entity covering every
// duplicated column name, not one per duplicate instance.
func (v *EntityStructureValidator) checkDuplicateColumns(e models.Entity) (models.Warning, bool) {
	groups := DuplicateColumnGroups(e)
	if len(groups) == 0 {
		return models.Warning{}, false
	}

	names := make([]string, len(groups))
	duplicates := make([]interface{}, len(groups))
	for i, g := range groups {
		names[i] = g.Name
		duplicates[i] = map[string]interface{}{
			"name":  g.Name,
			"count": len(g.Instances),
			"keep":  g.Instances[SelectBestColumn(g.Instances)].Raw,
		}
	}

	return models.Warning{
		Type:      models.WarningTypeDuplicateColumn,
		Category:  CategoryStructure,
		Severity:  models.SeverityError,
		Entity:    e.Name,
		Attribute: strings.Join(names, ", "),
		Message:   fmt.Sprintf("Entity '%s' defines duplicate columns: %s", e.Name, strings.Join(names, ", ")),
		Suggestion: "Remove the duplicate definitions; the copy carrying a key constraint " +
			"or a description is kept.",
		AutoFixable: true,
		FixData: map[string]interface{}{
			"entity":     e.Name,
			"duplicates": duplicates,
		},
	}, true
}

func (v *EntityStructureValidator) checkMultiplePrimaryKeys(e models.Entity) (models.Warning, bool) {
	var pks []string
	for _, a := range e.Attributes {
		if a.IsPrimaryKey() {
			pks = append(pks, a.Name)
		}
	}
	if len(pks) < 2 {
		return models.Warning{}, false
	}

	return models.Warning{
		Type:        models.WarningTypePrimaryKey,
		Category:    CategoryStructure,
		Severity:    models.SeverityError,
		Entity:      e.Name,
		Attribute:   strings.Join(pks, ", "),
		Message:     fmt.Sprintf("Entity '%s' has %d primary key columns", e.Name, len(pks)),
		Suggestion:  "Keep exactly one PK column; Dataverse tables have a single primary key.",
		AutoFixable: false,
	}, true
}
