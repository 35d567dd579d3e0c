package models

// Attribute is a single typed column line inside an entity block,
// e.g. `string name PK "customer name"`.
type Attribute struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Constraint  string `json:"constraint,omitempty"` // "PK", "FK" or "PK,FK"
	Description string `json:"description,omitempty"`

	// Raw is the trimmed source line the attribute was parsed from. Fixers
	// re-insert surviving attribute lines verbatim, so the original text is
	// kept alongside the parsed fields.
	Raw string `json:"-"`
}

// HasConstraint reports whether the attribute carries a PK or FK marker.
func (a Attribute) HasConstraint() bool {
	return a.Constraint != ""
}

// IsPrimaryKey reports whether the attribute is marked PK.
func (a Attribute) IsPrimaryKey() bool {
	return a.Constraint == "PK" || a.Constraint == "PK,FK" || a.Constraint == "FK,PK"
}

// Entity is a named ERD block with its attribute lines in source order.
type Entity struct {
	Name           string      `json:"name"`
	Attributes     []Attribute `json:"attributes"`
	IsCDMCandidate bool        `json:"isCdmCandidate"`
}

// Relationship is one relationship line, e.g. `Customer ||--o{ Order : places`.
// Start and End are byte offsets of the full matched line within the source
// text; fixers delete exact spans, so the offsets travel with the tuple.
type Relationship struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Cardinality string `json:"cardinality"`
	Label       string `json:"label"`

	Start int `json:"-"`
	End   int `json:"-"`
}
