package parser

import (
	"regexp"
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// relationshipRe matches one relationship line
// `Source <cardinality> Target : label`, where the cardinality is standard
// entity-relationship notation such as `||--o{` or `}o..o{`. The match is
// anchored to the line so the captured span covers exactly the text a fixer
// would have to delete.
var relationshipRe = regexp.MustCompile(`(?m)^[ \t]*([^\s{}]+)[ \t]+((?:\|\||\|o|\}o|\}\|)(?:--|\.\.)(?:\|\||o\||o\{|\|\{))[ \t]+([^\s{}]+)[ \t]*:[ \t]*(.+?)[ \t]*\r?$`)

// ExtractRelationships scans ERD text for relationship lines and returns the
// structured tuples in source order. Duplicate lines are kept; detecting and
// removing duplicates is the job of the relationship validator and fixer, not
// the extractor.
func ExtractRelationships(content string) []models.Relationship {
	var rels []models.Relationship

	for _, idx := range relationshipRe.FindAllStringSubmatchIndex(content, -1) {
		group := func(n int) string {
			if idx[2*n] < 0 {
				return ""
			}
			return content[idx[2*n]:idx[2*n+1]]
		}
		rels = append(rels, models.Relationship{
			Source:      group(1),
			Cardinality: group(2),
			Target:      group(3),
			Label:       strings.Trim(group(4), `"`),
			Start:       idx[0],
			End:         idx[1],
		})
	}
	return rels
}

// SameEdge reports whether two relationships connect the same pair of
// entities, in either direction. The diagram treats the connection between
// two entities as one conceptual edge regardless of which end appears first.
func SameEdge(a, b models.Relationship) bool {
	if a.Source == b.Source && a.Target == b.Target {
		return true
	}
	return a.Source == b.Target && a.Target == b.Source
}
