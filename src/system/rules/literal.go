package rules

import "github.com/go-analogy/sme/src/system/model"

// LiteralSimilarity is the default ruleset (§4.B): same-functor relation
// matching at the filter stage, plus positional child-generation at the
// intern stage. Entity-pair MHs fall out of child-generation automatically
// whenever a matched expression pair's positional args are both entities —
// that is the "entity-pair MH interning where both parents align" the spec
// names as a separate clause.
func LiteralSimilarity() *Ruleset {
	return New().
		AddFilter(filterSameFunctor).
		AddIntern(internPositionalChildren)
}

// filterSameFunctor proposes an MH for any pair of expressions sharing a
// functor name and arity. Entities are left to intern rules, never paired
// directly by this filter.
func filterSameFunctor(base, target model.Item) (*model.MH, error) {
	be, ok := base.(*model.Expression)
	if !ok {
		return nil, nil
	}
	te, ok := target.(*model.Expression)
	if !ok {
		return nil, nil
	}
	if be.Functor == nil || te.Functor == nil {
		return nil, nil
	}
	if be.Functor.Name != te.Functor.Name || be.Functor.Arity != te.Functor.Arity {
		return nil, nil
	}
	return &model.MH{Base: be, Target: te}, nil
}

// internPositionalChildren pairs an expression MH's args position-by-
// position. It yields nothing for emaps or for expressions whose arities
// disagree (§4.C's children(m) definition, mirrored here at generation
// time rather than structuring time).
func internPositionalChildren(m model.MH) ([]model.MH, error) {
	if model.IsEmap(m) {
		return nil, nil
	}
	be, ok := m.Base.(*model.Expression)
	if !ok {
		return nil, nil
	}
	te, ok := m.Target.(*model.Expression)
	if !ok {
		return nil, nil
	}
	if len(be.Args) != len(te.Args) {
		return nil, nil
	}
	out := make([]model.MH, 0, len(be.Args))
	for i := range be.Args {
		ba, ta := be.Args[i], te.Args[i]
		if !model.SameKind(ba, ta) {
			continue
		}
		out = append(out, model.MH{Base: ba, Target: ta})
	}
	return out, nil
}
