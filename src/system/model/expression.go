package model

import "github.com/google/uuid"

// Expression is a node (functor, args); args are entities or other
// expressions, never mixed with the functor's own identity (§3).
type Expression struct {
	id      string
	Functor *Predicate
	Args    []Item
}

// NewExpression builds an expression over functor and args. It does not
// validate arity or detect cycles — that is Graph's job at construction
// time.
func NewExpression(id string, functor *Predicate, args ...Item) *Expression {
	if id == "" {
		id = uuid.NewString()
	}
	return &Expression{id: id, Functor: functor, Args: args}
}

func (e *Expression) Ident() string { return e.id }
func (e *Expression) isItem()       {}

// Functor/Args accessors mirror §4.A's functor(e)/args(e) operations.
func Functor(e *Expression) *Predicate { return e.Functor }
func Args(e *Expression) []Item        { return e.Args }

// Descendants returns every Item transitively reachable from e's args,
// e itself excluded, each item appearing once regardless of how many
// paths reach it (expressions form a DAG with sharing, §3).
func Descendants(e *Expression) []Item {
	seen := map[string]bool{}
	var out []Item
	var walk func(Item)
	walk = func(it Item) {
		if seen[it.Ident()] {
			return
		}
		seen[it.Ident()] = true
		out = append(out, it)
		if sub, ok := it.(*Expression); ok {
			for _, a := range sub.Args {
				walk(a)
			}
		}
	}
	for _, a := range e.Args {
		walk(a)
	}
	return out
}

// IsAncestor reports whether any item in roots has target among its
// descendants (or equals it) — §4.A's ancestor? predicate, lifted to a set
// of candidate ancestors.
func IsAncestor(roots []*Expression, target Item) bool {
	for _, r := range roots {
		if r.Ident() == target.Ident() {
			return true
		}
		for _, d := range Descendants(r) {
			if d.Ident() == target.Ident() {
				return true
			}
		}
	}
	return false
}
