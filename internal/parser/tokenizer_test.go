package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuiseFreese/mermaid-sub012/internal/models"
)

func TestTokenizeEntities(t *testing.T) {
	erd := `erDiagram
    Customer {
        string name PK "customer name"
        int age
        datetime created_at FK
    }

    Order {
        int id PK
        decimal total "order total"
    }
`

	entities := TokenizeEntities(erd)
	require.Len(t, entities, 2)

	customer := entities[0]
	assert.Equal(t, "Customer", customer.Name)
	require.Len(t, customer.Attributes, 3)
	assert.Equal(t, models.Attribute{
		Type:        "string",
		Name:        "name",
		Constraint:  "PK",
		Description: "customer name",
		Raw:         `string name PK "customer name"`,
	}, customer.Attributes[0])
	assert.Equal(t, "age", customer.Attributes[1].Name)
	assert.Empty(t, customer.Attributes[1].Constraint)
	assert.Equal(t, "FK", customer.Attributes[2].Constraint)

	order := entities[1]
	assert.Equal(t, "Order", order.Name)
	require.Len(t, order.Attributes, 2)
	assert.Equal(t, "order total", order.Attributes[1].Description)
}

func TestTokenizeEntitiesSkipsUnparseableLines(t *testing.T) {
	erd := `erDiagram
    Customer {
        string name PK
        %% a comment line
        this is ??? not an attribute !!!
        int age
    }
`

	entities := TokenizeEntities(erd)
	require.Len(t, entities, 1)
	require.Len(t, entities[0].Attributes, 2)
	assert.Equal(t, "name", entities[0].Attributes[0].Name)
	assert.Equal(t, "age", entities[0].Attributes[1].Name)
}

func TestTokenizeEntitiesMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty input", "", 0},
		{"no entities", "erDiagram\n  A ||--o{ B : owns\n", 0},
		{"unclosed block", "erDiagram\n  Customer {\n    string name\n", 0},
		{"garbage", "not mermaid at all \x00\x01", 0},
		{"header only", "erDiagram\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, TokenizeEntities(tt.content), tt.want)
		})
	}
}

func TestTokenizeEntitiesKeepsInvalidNames(t *testing.T) {
	erd := "erDiagram\n  Order-Items {\n    int id PK\n  }\n"

	entities := TokenizeEntities(erd)
	require.Len(t, entities, 1)
	assert.Equal(t, "Order-Items", entities[0].Name)
}

func TestTokenizeEntitiesPreservesSourceOrder(t *testing.T) {
	erd := "erDiagram\n  Zeta {\n    int id PK\n  }\n  Alpha {\n    int id PK\n  }\n"

	entities := TokenizeEntities(erd)
	require.Len(t, entities, 2)
	assert.Equal(t, "Zeta", entities[0].Name)
	assert.Equal(t, "Alpha", entities[1].Name)
}

func TestParseAttributesConstraintForms(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		constraint string
	}{
		{"no constraint", "string name", ""},
		{"pk", "string name PK", "PK"},
		{"fk", "string name FK", "FK"},
		{"pk and fk", "string name PK FK", "PK,FK"},
		{"uk tolerated", "string name UK", "UK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := ParseAttributes(tt.line)
			require.Len(t, attrs, 1)
			assert.Equal(t, tt.constraint, attrs[0].Constraint)
		})
	}
}

func TestAttributePrimaryKeyHelpers(t *testing.T) {
	pk := models.Attribute{Constraint: "PK"}
	both := models.Attribute{Constraint: "PK,FK"}
	fk := models.Attribute{Constraint: "FK"}
	none := models.Attribute{}

	assert.True(t, pk.IsPrimaryKey())
	assert.True(t, both.IsPrimaryKey())
	assert.False(t, fk.IsPrimaryKey())
	assert.True(t, fk.HasConstraint())
	assert.False(t, none.HasConstraint())
}
