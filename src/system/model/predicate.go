package model

// PredicateKind tags the relational role a predicate plays (§3).
type PredicateKind string

const (
	KindRelation  PredicateKind = "relation"
	KindFunction  PredicateKind = "function"
	KindAttribute PredicateKind = "attribute"
	KindLogical   PredicateKind = "logical"
)

// Predicate is a named relational symbol. Commutative and ArgOrder are
// ordering metadata consumed only by the rule engine (§3) — the knowledge
// model itself never reorders args.
type Predicate struct {
	Name        string
	Arity       int
	Kind        PredicateKind
	Commutative bool
	// ArgOrder, when non-nil, gives a canonical permutation of argument
	// positions (e.g. sort heavier sub-expressions last); nil means
	// positional order is already canonical.
	ArgOrder []int
}

// NewPredicate builds a predicate. Arity must be non-negative.
func NewPredicate(name string, arity int, kind PredicateKind) *Predicate {
	return &Predicate{Name: name, Arity: arity, Kind: kind}
}

func (p *Predicate) WithCommutative(c bool) *Predicate {
	p.Commutative = c
	return p
}

func (p *Predicate) WithArgOrder(order []int) *Predicate {
	p.ArgOrder = order
	return p
}
