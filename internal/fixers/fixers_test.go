package fixers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
	"github.com/LuiseFreese/mermaid-sub012/internal/parser"
)

func duplicateColumnWarning(entity string) models.Warning {
	return models.Warning{
		Type:   models.WarningTypeDuplicateColumn,
		Entity: entity,
	}
}

func TestDuplicateColumnFixerKeepsConstrainedCopy(t *testing.T) {
	erd := `erDiagram
    Customer {
        string name PK "primary name"
        string name "duplicate"
    }
`

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Customer"))
	require.True(t, result.Success, result.Error)

	want := `erDiagram
    Customer {
        string name PK "primary name"
    }
`
	assert.Equal(t, want, result.Data)
	assert.Contains(t, result.Message, "'name' (2 copies)")
}

func TestDuplicateColumnFixerKeepsDescribedCopy(t *testing.T) {
	erd := `erDiagram
    Customer {
        string email
        string email "contact address"
    }
`

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Customer"))
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Data, `string email "contact address"`)
	assert.Equal(t, 1, len(parser.TokenizeEntities(result.Data)[0].Attributes))
}

func TestDuplicateColumnFixerPreservesOtherColumns(t *testing.T) {
	erd := `erDiagram
    Customer {
        string name PK
        string email
        string name
    }
`

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Customer"))
	require.True(t, result.Success, result.Error)

	entities := parser.TokenizeEntities(result.Data)
	require.Len(t, entities, 1)
	require.Len(t, entities[0].Attributes, 2)
	assert.Equal(t, "email", entities[0].Attributes[0].Name)
	assert.Equal(t, "name", entities[0].Attributes[1].Name)
	assert.Equal(t, "PK", entities[0].Attributes[1].Constraint)
}

func TestDuplicateColumnFixerMultipleDuplicatedNames(t *testing.T) {
	erd := `erDiagram
    Customer {
        string name PK
        string name
        int age
        int age "in years"
    }
`

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Customer"))
	require.True(t, result.Success, result.Error)

	want := `erDiagram
    Customer {
        string name PK
        int age "in years"
    }
`
	assert.Equal(t, want, result.Data)
}

func TestDuplicateColumnFixerEntityNotFound(t *testing.T) {
	erd := "erDiagram\n    Customer {\n        string name PK\n    }\n"

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Supplier"))
	assert.False(t, result.Success)
	assert.Equal(t, "entity 'Supplier' not found", result.Error)
	assert.Empty(t, result.Data)
}

func TestDuplicateColumnFixerNothingToFix(t *testing.T) {
	erd := "erDiagram\n    Customer {\n        string name PK\n    }\n"

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Customer"))
	assert.False(t, result.Success)
	assert.Equal(t, "no duplicate columns found in entity 'Customer'", result.Error)
}

func TestDuplicateRelationshipFixerKeepsFirstDeclaration(t *testing.T) {
	erd := "erDiagram\n" +
		"    Employee ||--o{ Department : works\n" +
		"    Employee ||--o{ Department : works\n" +
		"    Employee ||--|| Badge : holds\n"

	warning := models.Warning{
		Type: models.WarningTypeDuplicateRelationship,
		FixData: map[string]interface{}{
			"source": "Employee",
			"target": "Department",
		},
	}

	result := NewDuplicateRelationshipFixer().Fix(erd, warning)
	require.True(t, result.Success, result.Error)

	want := "erDiagram\n" +
		"    Employee ||--o{ Department : works\n" +
		"    Employee ||--|| Badge : holds\n"
	assert.Equal(t, want, result.Data)

	remaining := parser.ExtractRelationships(result.Data)
	assert.Len(t, remaining, 2)
}

func TestDuplicateRelationshipFixerMirroredDirections(t *testing.T) {
	erd := "erDiagram\n" +
		"    A ||--o{ B : owns\n" +
		"    B ||--o{ A : owned_by\n"

	// No fix data: the edge is recovered from the display form.
	warning := models.Warning{
		Type:         models.WarningTypeDuplicateRelationship,
		Relationship: "A → B",
	}

	result := NewDuplicateRelationshipFixer().Fix(erd, warning)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "erDiagram\n    A ||--o{ B : owns\n", result.Data)
}

func TestDuplicateRelationshipFixerNothingToFix(t *testing.T) {
	erd := "erDiagram\n    A ||--o{ B : owns\n"

	warning := models.Warning{
		Type:         models.WarningTypeDuplicateRelationship,
		Relationship: "A → B",
	}

	result := NewDuplicateRelationshipFixer().Fix(erd, warning)
	assert.False(t, result.Success)
	assert.Equal(t, "no duplicate relationships found between 'A' and 'B'", result.Error)
}

func TestNamingConflictFixerRenamesColumn(t *testing.T) {
	erd := `erDiagram
    Customer {
        string customer PK "the name"
        string email
    }
`

	warning := models.Warning{
		Type:      models.WarningTypeNaming,
		Entity:    "Customer",
		Attribute: "customer",
		FixData:   map[string]interface{}{"rename": "customer_value"},
	}

	result := NewNamingConflictFixer().Fix(erd, warning)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Data, `string customer_value PK "the name"`)
	assert.NotContains(t, result.Data, "string customer PK")

	attrs := parser.TokenizeEntities(result.Data)[0].Attributes
	require.Len(t, attrs, 2)
	assert.Equal(t, "customer_value", attrs[0].Name)
	assert.Equal(t, "PK", attrs[0].Constraint)
}

func TestNamingConflictFixerColumnNotFound(t *testing.T) {
	erd := "erDiagram\n    Customer {\n        string email\n    }\n"

	warning := models.Warning{
		Type:      models.WarningTypeNaming,
		Entity:    "Customer",
		Attribute: "customer",
	}

	result := NewNamingConflictFixer().Fix(erd, warning)
	assert.False(t, result.Success)
	assert.Equal(t, "column 'customer' not found in entity 'Customer'", result.Error)
}

func TestChoiceColumnFixerRewritesStatusType(t *testing.T) {
	erd := `erDiagram
    Task {
        int id PK
        status state "Open, Done"
        status other
    }
`

	warning := models.Warning{
		Type:      models.WarningTypeStatus,
		Entity:    "Task",
		Attribute: "state",
	}

	result := NewChoiceColumnFixer().Fix(erd, warning)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, result.Data, `picklist state "Open, Done"`)
	// Only the named column changes.
	assert.Contains(t, result.Data, "status other")
}

func TestChoiceColumnFixerColumnNotFound(t *testing.T) {
	erd := "erDiagram\n    Task {\n        int id PK\n    }\n"

	warning := models.Warning{
		Type:      models.WarningTypeStatus,
		Entity:    "Task",
		Attribute: "state",
	}

	result := NewChoiceColumnFixer().Fix(erd, warning)
	assert.False(t, result.Success)
	assert.Equal(t, "status column 'state' not found in entity 'Task'", result.Error)
}

func TestForWarningDispatch(t *testing.T) {
	fixable := []string{
		models.WarningTypeDuplicateColumn,
		models.WarningTypeDuplicateRelationship,
		models.WarningTypeNaming,
		models.WarningTypeStatus,
	}
	for _, warningType := range fixable {
		f, ok := ForWarning(warningType)
		require.True(t, ok, warningType)
		assert.NotNil(t, f)
	}

	for _, warningType := range []string{models.WarningTypeCDM, models.WarningTypeChoice, "unknown"} {
		_, ok := ForWarning(warningType)
		assert.False(t, ok, warningType)
	}
}

func TestFixedOutputStaysParseable(t *testing.T) {
	erd := `erDiagram
    Customer {
        string name PK
        string name
    }
    Customer ||--o{ Order : places
`

	result := NewDuplicateColumnFixer().Fix(erd, duplicateColumnWarning("Customer"))
	require.True(t, result.Success, result.Error)

	entities := parser.TokenizeEntities(result.Data)
	require.Len(t, entities, 1)
	assert.Len(t, entities[0].Attributes, 1)
	assert.Len(t, parser.ExtractRelationships(result.Data), 1)
}
