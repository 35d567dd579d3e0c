package fixers

import (
	"regexp"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// ChoiceColumnFixer rewrites a reserved `status` column type to `picklist` on
// the named column. Only the type token changes; name, key markers and
// description stay byte-identical.
type ChoiceColumnFixer struct{}

func NewChoiceColumnFixer() *ChoiceColumnFixer {
	return &ChoiceColumnFixer{}
}

func (f *ChoiceColumnFixer) Name() string { return "choice-column" }

func (f *ChoiceColumnFixer) Fix(content string, warning models.Warning) models.FixResult {
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

	loc := entityBlockPattern(entityName).FindStringSubmatchIndex(content)
	if loc == nil {
		return failure("entity '%s' not found", entityName)
	}
	bodyStart, bodyEnd := loc[2], loc[3]
	body := content[bodyStart:bodyEnd]

	lineRe := regexp.MustCompile(`(?m)^([ \t]*)status([ \t]+` +
		regexp.QuoteMeta(attribute) + `)([ \t].*)?$`)
	rewritten := lineRe.ReplaceAllString(body, "${1}picklist${2}${3}")
	if rewritten == body {
		return failure("status column '%s' not found in entity '%s'", attribute, entityName)
	}

	fixed := content[:bodyStart] + rewritten + content[bodyEnd:]
	return success(fixed, "Changed column '%s' in entity '%s' from 'status' to 'picklist'",
		attribute, entityName)
}
