package gmap

import (
	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/model"
	"github.com/go-analogy/sme/src/system/structurer"
)

// GMap is a maximal subtree-rooted collection of MHs plus the structural
// metadata inherited from its root(s) (§3).
type GMap struct {
	MHs    map[string]model.MH
	Roots  []model.MH
	Emaps  map[string]model.MH
	Nogood map[string]model.MH

	// Set by later pipeline stages; zero-valued until then.
	Score       float64
	EmapMatches int
	Mapping     Mapping
	Inferences  []model.Item
	Transferred []model.Item
}

// Mapping names the two graphs a GMap aligns, for the output contract's
// mapping:{base, target} field (§6).
type Mapping struct {
	Base   *model.Graph
	Target *model.Graph
}

// Consistent reports §3's "emaps ∩ nogood = ∅" test.
func (g *GMap) Consistent() bool {
	for k := range g.Emaps {
		if _, ok := g.Nogood[k]; ok {
			return false
		}
	}
	return true
}

// MutuallyConsistent reports §3's "neither's MHs intersect the other's
// nogood".
func MutuallyConsistent(a, b *GMap) bool {
	for k := range a.MHs {
		if _, ok := b.Nogood[k]; ok {
			return false
		}
	}
	for k := range b.MHs {
		if _, ok := a.Nogood[k]; ok {
			return false
		}
	}
	return true
}

// Roots returns every MH that is not a child of any other MH in structure
// (§4.D).
func Roots(structure structurer.Structure) []model.MH {
	isChild := map[string]bool{}
	for _, rec := range structure {
		for _, c := range rec.Children {
			isChild[c.Key()] = true
		}
	}
	var roots []model.MH
	for key, rec := range structure {
		if !isChild[key] {
			roots = append(roots, rec.MH)
		}
	}
	return roots
}

// Build constructs the initial, consistent GMap set (§4.D): for each root,
// emit one GMap if its record is already consistent, otherwise recurse
// into its children as if each were a root, splitting the inconsistent
// root into its consistent sub-GMaps. Childless MHs are always consistent
// (an empty emaps set trivially intersects nothing, and an emap's emaps
// set contains only itself, which by construction is excluded from its
// own nogood), so the recursion always terminates.
func Build(structure structurer.Structure, log *archivist.Archivist) []*GMap {
	roots := Roots(structure)
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "gmap BUILD begin roots=", len(roots))

	var out []*GMap
	var split func(m model.MH)
	split = func(m model.MH) {
		rec, ok := structure[m.Key()]
		if !ok {
			return
		}
		if rec.Consistent() {
			out = append(out, makeGMap(rec, structure))
			return
		}
		for _, child := range rec.Children {
			split(child)
		}
	}
	for _, r := range roots {
		split(r)
	}

	log.Debug(archivist.DEBUG_LEVEL_TRACE, "gmap BUILD done gmaps=", len(out))
	return out
}

func makeGMap(rootRec *structurer.Record, structure structurer.Structure) *GMap {
	mhs := closure(rootRec.MH, structure)
	return &GMap{
		MHs:    mhs,
		Roots:  []model.MH{rootRec.MH},
		Emaps:  copySet(rootRec.Emaps),
		Nogood: copySet(rootRec.Nogood),
	}
}

func closure(root model.MH, structure structurer.Structure) map[string]model.MH {
	visited := map[string]model.MH{}
	var walk func(m model.MH)
	walk = func(m model.MH) {
		if _, ok := visited[m.Key()]; ok {
			return
		}
		visited[m.Key()] = m
		rec, ok := structure[m.Key()]
		if !ok {
			return
		}
		for _, c := range rec.Children {
			walk(c)
		}
	}
	walk(root)
	return visited
}

func copySet(src map[string]model.MH) map[string]model.MH {
	out := make(map[string]model.MH, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
