package fixers

import (
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/parser"
)

// DuplicateRelationshipFixer removes repeated declarations of one undirected
// edge, keeping the first occurrence. Deletions run in reverse source order
// so earlier byte offsets stay valid while later spans are spliced out.
type DuplicateRelationshipFixer struct{}

func NewDuplicateRelationshipFixer() *DuplicateRelationshipFixer {
	return &DuplicateRelationshipFixer{}
}

func (f *DuplicateRelationshipFixer) Name() string { return "duplicate-relationship" }

func (f *DuplicateRelationshipFixer) Fix(content string, warning models.Warning) models.FixResult {
	source := fixDataString(warning.FixData, "source")
	target := fixDataString(warning.FixData, "target")
	if source == "" || target == "" {
		// Fall back to the display form "Source → Target".
		parts := strings.Split(warning.Relationship, " → ")
		if len(parts) == 2 {
			source, target = parts[0], parts[1]
		}
	}
	if source == "" || target == "" {
		return failure("fix data does not name a relationship")
	}

	edge := models.Relationship{Source: source, Target: target}
	var matches []models.Relationship
	for _, r := range parser.ExtractRelationships(content) {
		if parser.SameEdge(edge, r) {
			matches = append(matches, r)
		}
	}
	if len(matches) < 2 {
		return failure("no duplicate relationships found between '%s' and '%s'", source, target)
	}

	fixed := content
	for i := len(matches) - 1; i >= 1; i-- {
		fixed = deleteSpan(fixed, matches[i].Start, matches[i].End)
	}
	fixed = cleanupWhitespace(fixed)

	return success(fixed, "Removed %d duplicate declaration(s) of relationship '%s → %s'",
		len(matches)-1, source, target)
}

// deleteSpan removes content[start:end] together with the line break that
// followed it, so no empty line is left behind.
func deleteSpan(content string, start, end int) string {
	if end < len(content) && content[end] == '\n' {
		end++
	}
	return content[:start] + content[end:]
}
