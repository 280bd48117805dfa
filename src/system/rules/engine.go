package rules

import (
	"fmt"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/model"
)

// Generate runs ruleset over base and target per §4.B: filter rules see the
// full cartesian product of base and target items (top-level expressions,
// their descendant expressions, and the entities reachable among them);
// every non-nil result seeds the intern fixpoint, which is then run to
// closure. The result set is deduplicated by MH identity, which combined
// with the graphs' finiteness and acyclicity is what bounds the fixpoint
// (§4.B's termination argument).
func Generate(ruleset *Ruleset, base, target *model.Graph, log *archivist.Archivist) ([]model.MH, error) {
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "rules GENERATE begin baseItems=", len(base.Items()), " targetItems=", len(target.Items()))

	produced := map[string]model.MH{}

	baseItems := base.Items()
	targetItems := target.Items()
	var queue []model.MH

	for _, b := range baseItems {
		for _, t := range targetItems {
			for ruleIdx, filter := range ruleset.Filter {
				mh, err := filter(b, t)
				if err != nil {
					return nil, &RuleFailure{Stage: "filter", Index: ruleIdx, Err: err}
				}
				if mh == nil {
					continue
				}
				if !wellFormed(*mh) {
					return nil, &RuleFailure{Stage: "filter", Index: ruleIdx, Err: errMalformedMH}
				}
				key := mh.Key()
				if _, ok := produced[key]; !ok {
					produced[key] = *mh
					queue = append(queue, *mh)
				}
			}
		}
	}
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "rules GENERATE filter pass produced=", len(produced))

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		for ruleIdx, intern := range ruleset.Intern {
			derived, err := intern(m)
			if err != nil {
				return nil, &RuleFailure{Stage: "intern", Index: ruleIdx, Err: err}
			}
			for _, d := range derived {
				if !wellFormed(d) {
					return nil, &RuleFailure{Stage: "intern", Index: ruleIdx, Err: errMalformedMH}
				}
				key := d.Key()
				if _, ok := produced[key]; !ok {
					produced[key] = d
					queue = append(queue, d)
				}
			}
		}
	}

	out := make([]model.MH, 0, len(produced))
	for _, m := range produced {
		out = append(out, m)
	}
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "rules GENERATE done total=", len(out))
	return out, nil
}

var errMalformedMH = fmt.Errorf("malformed MH: base and target must both be entities or both be expressions")

// wellFormed reports whether m has both sides set and of the same kind.
func wellFormed(m model.MH) bool {
	return m.Base != nil && m.Target != nil && model.SameKind(m.Base, m.Target)
}
