package model

// MH is a match hypothesis: a candidate pairing of one base item with one
// target item. Both sides are entities or both are expressions — never
// mixed (§3 invariant 1).
type MH struct {
	Base   Item
	Target Item
}

// Key is a stable identity for use as a map key / set element, since MH is
// a struct of interfaces and not itself comparable-safe across packages
// holding different pointer identities for equal content.
func (m MH) Key() string {
	return m.Base.Ident() + "->" + m.Target.Ident()
}

// IsEmap reports whether m pairs two entities (§3: "An MH is an emap iff
// both sides are entities").
func IsEmap(m MH) bool {
	return IsEntity(m.Base) && IsEntity(m.Target)
}
