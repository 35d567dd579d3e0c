package fixers

import (
	"regexp"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// NamingConflictFixer renames an attribute whose name collides with its
// entity's name. The rename happens inside the entity block only;
// relationship lines reference entities, never attributes, so nothing else
// in the text can refer to the old name.
type NamingConflictFixer struct{}

func NewNamingConflictFixer() *NamingConflictFixer {
	return &NamingConflictFixer{}
}

func (f *NamingConflictFixer) Name() string { return "naming-conflict" }

func (f *NamingConflictFixer) Fix(content string, warning models.Warning) models.FixResult {
	entityName := warning.Entity
	if entityName == "" {
		entityName = fixDataString(warning.FixData, "entity")
	}
	attribute := warning.Attribute
	if attribute == "" {
		attribute = fixDataString(warning.FixData, "attribute")
	}
	if entityName == "" || attribute == "" {
		return failure("fix data does not name an entity and attribute")
	}
	rename := fixDataString(warning.FixData, "rename")
	if rename == "" {
		rename = attribute + "_value"
	}

	loc := entityBlockPattern(entityName).FindStringSubmatchIndex(content)
	if loc == nil {
		return failure("entity '%s' not found", entityName)
	}
	bodyStart, bodyEnd := loc[2], loc[3]
	body := content[bodyStart:bodyEnd]

	// Replace the name token after the type token on each matching line.
	lineRe := regexp.MustCompile(`(?m)^([ \t]*[A-Za-z_][A-Za-z0-9_()\[\]]*[ \t]+)` +
		regexp.QuoteMeta(attribute) + `([ \t]|$)`)
	renamed := lineRe.ReplaceAllString(body, "${1}"+rename+"${2}")
	if renamed == body {
		return failure("column '%s' not found in entity '%s'", attribute, entityName)
	}

	fixed := content[:bodyStart] + renamed + content[bodyEnd:]
	return success(fixed, "Renamed column '%s' to '%s' in entity '%s'",
		attribute, rename, entityName)
}
