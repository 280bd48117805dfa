package model

// Item is either an *Entity or an *Expression. MHs and expression args are
// always one of these two, never mixed (§3 invariant 1).
type Item interface {
	// Ident returns the item's opaque, stable identity string, usable as a
	// map key. Entities and expressions both have one regardless of kind.
	Ident() string
	isItem()
}

// IsEntity reports whether item is an *Entity.
func IsEntity(item Item) bool {
	_, ok := item.(*Entity)
	return ok
}

// IsExpression reports whether item is an *Expression.
func IsExpression(item Item) bool {
	_, ok := item.(*Expression)
	return ok
}

// SameKind reports whether a and b are both entities or both expressions.
func SameKind(a, b Item) bool {
	return IsEntity(a) == IsEntity(b)
}
