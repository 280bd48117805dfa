package structurer

import (
	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/model"
)

// Record is the structural annotation of a single MH (§3): the emaps and
// nogood MHs reachable from its subtree, and its direct children.
type Record struct {
	MH       model.MH
	Emaps    map[string]model.MH
	Nogood   map[string]model.MH
	Children []model.MH
}

func newRecord(m model.MH) *Record {
	return &Record{MH: m, Emaps: map[string]model.MH{}, Nogood: map[string]model.MH{}}
}

// Consistent reports whether a Record's emaps and nogood sets are disjoint
// (§3: "A GMap is consistent iff emaps ∩ nogood = ∅" — the same test
// applies to a single MH's subtree before it is ever assembled into a
// GMap).
func (r *Record) Consistent() bool {
	for k := range r.Emaps {
		if _, ok := r.Nogood[k]; ok {
			return false
		}
	}
	return true
}

// Structure is the full annotated MH set, keyed by MH.Key().
type Structure map[string]*Record

// Annotate runs both structurer phases (§4.C) over mhs: phase 1 builds the
// by_base/by_target multimaps and derives each MH's local emaps/nogood/
// children; phase 2 propagates emaps and nogood upward from children to
// parents, memoized by a visited set keyed by MH so each MH's subtree is
// folded exactly once despite sharing.
func Annotate(mhs []model.MH, log *archivist.Archivist) Structure {
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "structurer ANNOTATE begin mhs=", len(mhs))

	byBase := map[string][]model.MH{}
	byTarget := map[string][]model.MH{}
	for _, m := range mhs {
		byBase[m.Base.Ident()] = append(byBase[m.Base.Ident()], m)
		byTarget[m.Target.Ident()] = append(byTarget[m.Target.Ident()], m)
	}

	structure := Structure{}
	for _, m := range mhs {
		rec := newRecord(m)

		if model.IsEmap(m) {
			rec.Emaps[m.Key()] = m
		}

		for _, other := range byBase[m.Base.Ident()] {
			if other.Key() != m.Key() {
				rec.Nogood[other.Key()] = other
			}
		}
		for _, other := range byTarget[m.Target.Ident()] {
			if other.Key() != m.Key() {
				rec.Nogood[other.Key()] = other
			}
		}

		if !model.IsEmap(m) {
			be, baseOK := m.Base.(*model.Expression)
			te, targetOK := m.Target.(*model.Expression)
			if baseOK && targetOK && len(be.Args) == len(te.Args) {
				childSet := map[string]model.MH{}
				for i := range be.Args {
					bi := be.Args[i].Ident()
					ti := te.Args[i].Ident()
					for _, cand := range byBase[bi] {
						if cand.Target.Ident() == ti {
							childSet[cand.Key()] = cand
						}
					}
				}
				rec.Children = setValues(childSet)
			}
		}

		structure[m.Key()] = rec
	}

	visited := map[string]bool{}
	var propagate func(key string)
	propagate = func(key string) {
		if visited[key] {
			return
		}
		visited[key] = true
		rec, ok := structure[key]
		if !ok {
			return
		}
		for _, child := range rec.Children {
			propagate(child.Key())
			childRec, ok := structure[child.Key()]
			if !ok {
				continue
			}
			for k, v := range childRec.Emaps {
				rec.Emaps[k] = v
			}
			for k, v := range childRec.Nogood {
				rec.Nogood[k] = v
			}
		}
	}
	for key := range structure {
		propagate(key)
	}

	log.Debug(archivist.DEBUG_LEVEL_TRACE, "structurer ANNOTATE done records=", len(structure))
	return structure
}

func setValues(m map[string]model.MH) []model.MH {
	out := make([]model.MH, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
