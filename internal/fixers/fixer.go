// Package fixers implements the textual auto-fixes for fixable validation
// warnings. Fixers operate on raw ERD text only, splicing exact substrings,
// so every fix stays minimal and the output remains parseable by the
// tokenizer. Preconditions that do not hold (entity not found, nothing left
// to fix) come back as a structured failure with the input left untouched.
package fixers

import (
	"fmt"
	"regexp"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

// Fixer rewrites ERD text to resolve one warning. Implementations re-derive
// the defect from the text they receive instead of trusting stale fixData,
// which is what makes fixes chainable and idempotent.
type Fixer interface {
	Name() string
	Fix(content string, warning models.Warning) models.FixResult
}

// ForWarning returns the fixer responsible for a warning type, or false when
// the type has no auto-fix.
func ForWarning(warningType string) (Fixer, bool) {
	switch warningType {
	case models.WarningTypeDuplicateColumn:
		return NewDuplicateColumnFixer(), true
	case models.WarningTypeDuplicateRelationship:
		return NewDuplicateRelationshipFixer(), true
	case models.WarningTypeNaming:
		return NewNamingConflictFixer(), true
	case models.WarningTypeStatus:
		return NewChoiceColumnFixer(), true
	default:
		return nil, false
	}
}

func failure(format string, args ...interface{}) models.FixResult {
	return models.FixResult{Success: false, Error: fmt.Sprintf(format, args...)}
}

func success(data, format string, args ...interface{}) models.FixResult {
	return models.FixResult{Success: true, Data: data, Message: fmt.Sprintf(format, args...)}
}

// entityBlockPattern locates the named entity's block `Name { ... }`. Blocks
// do not nest in Mermaid ERD syntax, so a bounded single-brace scan is exact.
func entityBlockPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(name) + `[ \t]*\{([^{}]*)\}`)
}

var (
	trailingSpaceOnlyRe = regexp.MustCompile(`(?m)^[ \t]+$`)
	blankRunRe          = regexp.MustCompile(`\n{4,}`)
)

// cleanupWhitespace strips whitespace-only lines and collapses runs of three
// or more consecutive blank lines into a single blank line.
func cleanupWhitespace(content string) string {
	content = trailingSpaceOnlyRe.ReplaceAllString(content, "")
	return blankRunRe.ReplaceAllString(content, "\n\n")
}

// fixDataString reads a string field out of a warning's opaque fix payload.
func fixDataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	s, _ := data[key].(string)
	return s
}
