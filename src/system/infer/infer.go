package infer

import (
	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/gmap"
	"github.com/go-analogy/sme/src/system/model"
)

// Annotate computes g.Inferences (§4.H steps 1-3): the base-only
// substructure a GMap's alignment leaves unmatched, restricted to unmatched
// expressions that are ancestors of an already-matched base item, plus their
// unmatched descendants (so a whole disconnected base subgraph the mapping
// never touched isn't pulled in as noise).
func Annotate(g *gmap.GMap, base *model.Graph, log *archivist.Archivist) {
	matchedBase := map[string]bool{}
	var matchedBaseItems []model.Item
	for _, m := range g.MHs {
		matchedBase[m.Base.Ident()] = true
		matchedBaseItems = append(matchedBaseItems, m.Base)
	}

	var unmatchedExprs []*model.Expression
	for _, e := range base.Expressions() {
		if !matchedBase[e.Ident()] {
			unmatchedExprs = append(unmatchedExprs, e)
		}
	}

	// "Ancestor of some matched base expression" (§4.H) is read here as
	// ancestor of any matched base item, entity or expression: an emap's
	// two entities are matched base items too, and the canonical inference
	// example (§8.6, greater(heat,cold) unmatched but heat/cold matched)
	// only has entity-level matches to anchor on. See DESIGN.md.
	var ancestors []*model.Expression
	for _, e := range unmatchedExprs {
		for _, m := range matchedBaseItems {
			if model.IsAncestor([]*model.Expression{e}, m) {
				ancestors = append(ancestors, e)
				break
			}
		}
	}

	// descendants(ancestors) is read inclusively here (ancestors ∪ their
	// strict descendants): the canonical example (§8.6) transfers the
	// unmatched ancestor expression itself (greater(heat,cold) ->
	// greater(fast,slow)), not just its leaf args, which are typically
	// already matched and would otherwise filter out entirely. See
	// DESIGN.md.
	seen := map[string]bool{}
	var inferences []model.Item
	for _, a := range ancestors {
		items := append([]model.Item{a}, model.Descendants(a)...)
		for _, d := range items {
			if matchedBase[d.Ident()] || seen[d.Ident()] {
				continue
			}
			seen[d.Ident()] = true
			inferences = append(inferences, d)
		}
	}

	g.Inferences = inferences
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "infer ANNOTATE gmap unmatched=", len(unmatchedExprs), " ancestors=", len(ancestors), " inferences=", len(inferences))
}

// Transfer rewrites g.Inferences through g's base->target mapping (§4.H
// "Transfer"). transfer is a two-case result propagated bottom-up — never
// an exception (Design Notes, "Exceptions for control flow"): hitting an
// unmapped entity anywhere in an inference's expansion aborts transfer for
// the whole GMap, locally and silently (§7 InferenceAborted); g is left
// with Transferred == nil and no error is returned.
func Transfer(g *gmap.GMap, log *archivist.Archivist) {
	pairs := map[string]model.Item{}
	for _, m := range g.MHs {
		pairs[m.Base.Ident()] = m.Target
	}

	transferred := make([]model.Item, 0, len(g.Inferences))
	for _, x := range g.Inferences {
		t, ok := transferOne(x, pairs)
		if !ok {
			log.Debug(archivist.DEBUG_LEVEL_TRACE, "infer TRANSFER aborted item=", x.Ident())
			return
		}
		transferred = append(transferred, t)
	}
	g.Transferred = transferred
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "infer TRANSFER done transferred=", len(transferred))
}

func transferOne(x model.Item, pairs map[string]model.Item) (model.Item, bool) {
	if t, ok := pairs[x.Ident()]; ok {
		return t, true
	}
	if model.IsEntity(x) {
		return nil, false
	}
	expr, ok := x.(*model.Expression)
	if !ok {
		return nil, false
	}
	newArgs := make([]model.Item, len(expr.Args))
	for i, a := range expr.Args {
		ta, ok := transferOne(a, pairs)
		if !ok {
			return nil, false
		}
		newArgs[i] = ta
	}
	return model.NewExpression("", expr.Functor, newArgs...), true
}
