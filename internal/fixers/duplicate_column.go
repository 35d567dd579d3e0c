package fixers

import (
	"fmt"
	"strings"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/parser"
	"github.com/LuiseFreese/mermaid-sub012/internal/validators"
)

// DuplicateColumnFixer removes duplicate column definitions from one entity
// block. For every duplicated name it deletes all matching attribute lines
// and re-inserts exactly one surviving copy, chosen by the same best-instance
// policy the validator uses, immediately before the block's closing brace.
type DuplicateColumnFixer struct{}

func NewDuplicateColumnFixer() *DuplicateColumnFixer {
	return &DuplicateColumnFixer{}
}

func (f *DuplicateColumnFixer) Name() string { return "duplicate-column" }

func (f *DuplicateColumnFixer) Fix(content string, warning models.Warning) models.FixResult {
	entityName := warning.Entity
	if entityName == "" {
		entityName = fixDataString(warning.FixData, "entity")
	}
	if entityName == "" {
		return failure("fix data does not name an entity")
	}

	loc := entityBlockPattern(entityName).FindStringSubmatchIndex(content)
	if loc == nil {
		return failure("entity '%s' not found", entityName)
	}
	bodyStart, bodyEnd := loc[2], loc[3]
	body := content[bodyStart:bodyEnd]

	// Re-derive the duplicate groups from the current text; the warning may
	// be stale relative to fixes already applied.
	groups := validators.DuplicateColumnGroups(models.Entity{
		Name:       entityName,
		Attributes: parser.ParseAttributes(body),
	})
	if len(groups) == 0 {
		return failure("no duplicate columns found in entity '%s'", entityName)
	}

	duplicated := make(map[string]bool, len(groups))
	for _, g := range groups {
		duplicated[g.Name] = true
	}

	// Drop every line defining a duplicated column, remembering the
	// indentation in use so the surviving copies blend back in.
	lines := strings.Split(body, "\n")
	braceIndent := ""
	if last := lines[len(lines)-1]; strings.TrimSpace(last) == "" {
		braceIndent = last
	}
	kept := make([]string, 0, len(lines))
	indent := "    "
	for _, line := range lines {
		attrs := parser.ParseAttributes(line)
		if len(attrs) == 1 && duplicated[attrs[0].Name] {
			if i := strings.Index(line, attrs[0].Raw); i > 0 {
				indent = line[:i]
			}
			continue
		}
		kept = append(kept, line)
	}

	// Trim trailing blank lines of the body, then append one surviving copy
	// per duplicated name right before the closing brace.
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}
	if len(kept) == 0 || kept[0] != "" {
		// Keep the newline that follows the opening brace.
		kept = append([]string{""}, kept...)
	}
	var removed []string
	for _, g := range groups {
		best := g.Instances[validators.SelectBestColumn(g.Instances)]
		kept = append(kept, indent+best.Raw)
		removed = append(removed, fmt.Sprintf("'%s' (%d copies)", g.Name, len(g.Instances)))
	}
	kept = append(kept, braceIndent)

	fixed := content[:bodyStart] + strings.Join(kept, "\n") + content[bodyEnd:]
	fixed = cleanupWhitespace(fixed)

	return success(fixed, "Removed duplicate columns in entity '%s': %s",
		entityName, strings.Join(removed, ", "))
}
