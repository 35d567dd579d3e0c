// Package parser extracts entities, attributes and relationships from Mermaid
// erDiagram source text. Extraction is regex-driven and best-effort: lines the
// patterns do not recognize are skipped, never reported as errors, because the
// validators downstream are the strict part of the pipeline.
package parser

import (
	"regexp"
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

var (
	// entityBlockRe matches a non-nested entity block `Name { ... }`. The
	// name group is deliberately permissive (anything but whitespace and
	// braces) so that entities with invalid identifiers still tokenize and
	// can be flagged by the naming validator.
	entityBlockRe = regexp.MustCompile(`(?m)^[ \t]*([^\s{}]+)[ \t]*\{([^{}]*)\}`)

	// attributeLineRe matches one attribute line inside a block:
	// `<type> <name> [PK|FK|UK[, ...]] ["description"]`.
	attributeLineRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_()\[\]]*)\s+([^\s"]+)((?:\s+(?:PK|FK|UK))*)\s*(?:"([^"]*)")?\s*$`)
)

// TokenizeEntities extracts all entity blocks and their attribute lines from
// raw ERD text, in source order. Malformed input never fails; the result is
// whatever could be parsed, possibly empty.
func TokenizeEntities(content string) []models.Entity {
	var entities []models.Entity

	for _, m := range entityBlockRe.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if name == "erDiagram" {
			continue
		}
		entities = append(entities, models.Entity{
			Name:       name,
			Attributes: ParseAttributes(m[2]),
		})
	}
	return entities
}

// ParseAttributes parses the body of an entity block into attribute lines,
// skipping blank lines, `%%` comments and anything the attribute pattern does
// not recognize.
func ParseAttributes(body string) []models.Attribute {
	var attrs []models.Attribute

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%%") {
			continue
		}
		m := attributeLineRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		attrs = append(attrs, models.Attribute{
			Type:        m[1],
			Name:        m[2],
			Constraint:  normalizeConstraint(m[3]),
			Description: m[4],
			Raw:         trimmed,
		})
	}
	return attrs
}

// normalizeConstraint turns the raw key-marker capture (e.g. " PK  FK") into
// the canonical comma-joined form "PK,FK".
func normalizeConstraint(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, ",")
}
