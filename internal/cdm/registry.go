// Package cdm provides the Common Data Model entity name registry consulted
// by the CDM collision validator. The registry is injected as a capability so
// hosts can swap the static table for a live metadata source.
package cdm

import "strings"

// Registry answers whether a name collides with a standard CDM entity.
type Registry interface {
	// IsCDMEntity returns the canonical CDM entity name and true when the
	// given name (matched case-insensitively) is a standard CDM entity.
	IsCDMEntity(name string) (string, bool)
}

// staticRegistry is the built-in table of standard CDM entity logical names.
type staticRegistry struct {
	names map[string]struct{}
}

// standardEntities lists the CDM core and common business entities that most
// often collide with custom table names.
var standardEntities = []string{
	"account",
	"activity",
	"address",
	"appointment",
	"businessunit",
	"campaign",
	"case",
	"competitor",
	"contact",
	"contract",
	"currency",
	"email",
	"event",
	"fax",
	"feedback",
	"goal",
	"incident",
	"invoice",
	"lead",
	"letter",
	"note",
	"opportunity",
	"order",
	"organization",
	"phonecall",
	"position",
	"pricelist",
	"product",
	"quote",
	"systemuser",
	"task",
	"team",
	"territory",
	"user",
}

// NewStaticRegistry returns a Registry backed by the built-in CDM name table.
func NewStaticRegistry() Registry {
	names := make(map[string]struct{}, len(standardEntities))
	for _, n := range standardEntities {
		names[n] = struct{}{}
	}
	return &staticRegistry{names: names}
}

func (r *staticRegistry) IsCDMEntity(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if _, ok := r.names[lower]; ok {
		return lower, true
	}
	return "", false
}
