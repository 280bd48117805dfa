package scorer

import (
	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/gmap"
	"github.com/go-analogy/sme/src/system/model"
	"github.com/go-analogy/sme/src/system/structurer"
)

// Config is the one process-wide datum §5 and §6 name: the attribute names
// excluded from emap content comparison. It is constructed once per Match
// call and threaded explicitly into Score — never held as mutable global
// state (Design Notes, "Global mutable state").
type Config struct {
	UnmatchedAttributes []string
}

func (c Config) unmatchedSet() map[string]bool {
	set := make(map[string]bool, len(c.UnmatchedAttributes))
	for _, a := range c.UnmatchedAttributes {
		set[a] = true
	}
	return set
}

// Score computes and stores {score, emap-matches} on g (§4.G). structure
// supplies the children(m) relation the trickle-down SES recursion walks;
// it is the same Structure Annotate produced, not recomputed here.
func Score(g *gmap.GMap, structure structurer.Structure, cfg Config, log *archivist.Archivist) {
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "scorer SCORE begin mhs=", len(g.MHs))

	ses := 0
	for _, r := range g.Roots {
		ses += trickleDown(r, 0, structure)
	}
	g.Score = float64(len(g.MHs) + ses)

	unmatched := cfg.unmatchedSet()
	matches := 0
	for _, m := range g.Emaps {
		base, _ := m.Base.(*model.Entity)
		target, _ := m.Target.(*model.Entity)
		if base == nil || target == nil {
			continue
		}
		if base.ContentEqual(target, unmatched) {
			matches++
		}
	}
	g.EmapMatches = matches

	log.Debug(archivist.DEBUG_LEVEL_TRACE, "scorer SCORE done score=", g.Score, " emapMatches=", g.EmapMatches)
}

// trickleDown is §4.G's ses(m, d): d at a leaf (no children), otherwise d
// plus the recursive contribution of every child one level deeper. This is
// the recursion the spec calls "trickle-down" — depth accumulates from
// root toward leaves.
func trickleDown(m model.MH, depth int, structure structurer.Structure) int {
	rec, ok := structure[m.Key()]
	if !ok || len(rec.Children) == 0 {
		return depth
	}
	total := depth
	for _, c := range rec.Children {
		total += trickleDown(c, depth+1, structure)
	}
	return total
}
