package model

import (
	"math"

	"github.com/google/uuid"
)

// Attribute is one (name, value) pair of an entity's content record. Value
// holds either a float64 (numeric) or a string (symbolic).
type Attribute struct {
	Name  string
	Value interface{}
}

// Entity is an opaque identity plus an ordered content record (§3).
type Entity struct {
	id         string
	Name       string
	Attributes []Attribute
}

// NewEntity builds an entity. If id is empty a fresh uuid is generated, so
// callers that don't care about identity stability can omit it.
func NewEntity(id string, name string, attrs ...Attribute) *Entity {
	if id == "" {
		id = uuid.NewString()
	}
	return &Entity{id: id, Name: name, Attributes: attrs}
}

func (e *Entity) Ident() string { return e.id }
func (e *Entity) isItem()       {}

// Attr returns the value stored under name and whether it was present.
func (e *Entity) Attr(name string) (interface{}, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// ContentEqual implements the §3 emap content-match rule: attribute-name
// lists must be equal (order included — both sides are ordered mappings)
// and every retained value pair must be equal, numeric values compared
// after rounding to two decimals, half-up. Names in unmatched are dropped
// from both sides before either check.
func (e *Entity) ContentEqual(other *Entity, unmatched map[string]bool) bool {
	a := e.filteredAttrs(unmatched)
	b := other.filteredAttrs(unmatched)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
		if !valuesEqual(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

func (e *Entity) filteredAttrs(unmatched map[string]bool) []Attribute {
	if len(unmatched) == 0 {
		return e.Attributes
	}
	out := make([]Attribute, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		if unmatched[a.Name] {
			continue
		}
		out = append(out, a)
	}
	return out
}

func valuesEqual(a, b interface{}) bool {
	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		return roundHalfUp2(af) == roundHalfUp2(bf)
	}
	if aIsNum != bIsNum {
		return false
	}
	return a == b
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// roundHalfUp2 rounds to two decimal places, half away from zero.
func roundHalfUp2(v float64) float64 {
	scaled := v * 100
	if scaled >= 0 {
		return math.Floor(scaled+0.5) / 100
	}
	return math.Ceil(scaled-0.5) / 100
}
