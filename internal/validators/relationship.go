package validators

import (
	"fmt"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/parser"
)

// RelationshipValidator detects relationships declared more than once between
// the same pair of entities. Detection is undirected: `A ||--o{ B : x`
// followed by `B ||--o{ A : y` is two declarations of the same edge.
type RelationshipValidator struct{}

func NewRelationshipValidator() *RelationshipValidator {
	return &RelationshipValidator{}
}

func (v *RelationshipValidator) Name() string { return "relationship" }

func (v *RelationshipValidator) Validate(_ []models.Entity, relationships []models.Relationship, _ string) []models.Warning {
	var warnings []models.Warning

	grouped := GroupRelationshipsByEdge(relationships)
	for _, group := range grouped {
		if len(group) < 2 {
			continue
		}
		// The warning names the edge using the first occurrence's direction.
		first := group[0]
		edge := fmt.Sprintf("%s → %s", first.Source, first.Target)

		occurrences := make([]interface{}, len(group))
		for i, r := range group {
			occurrences[i] = map[string]interface{}{
				"cardinality": r.Cardinality,
				"label":       r.Label,
				"start":       r.Start,
				"end":         r.End,
			}
		}

		warnings = append(warnings, models.Warning{
			Type:         models.WarningTypeDuplicateRelationship,
			Category:     CategoryStructure,
			Severity:     models.SeverityWarning,
			Relationship: edge,
			Message:      fmt.Sprintf("Relationship '%s' is declared %d times", edge, len(group)),
			Suggestion:   "Keep the first declaration and remove the later ones.",
			AutoFixable:  true,
			FixData: map[string]interface{}{
				"source":      first.Source,
				"target":      first.Target,
				"occurrences": occurrences,
			},
		})
	}
	return warnings
}

// GroupRelationshipsByEdge buckets relationships by undirected endpoint pair,
// preserving first-occurrence order of both the groups and their members.
func GroupRelationshipsByEdge(relationships []models.Relationship) [][]models.Relationship {
	var groups [][]models.Relationship

	for _, r := range relationships {
		placed := false
		for i, group := range groups {
			if parser.SameEdge(group[0], r) {
				groups[i] = append(groups[i], r)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []models.Relationship{r})
		}
	}
	return groups
}
