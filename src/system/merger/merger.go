package merger

import (
	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/gmap"
	"github.com/go-analogy/sme/src/system/model"
)

// Merge turns each maximal consistent subset into one GMap by union of MHs,
// emaps, nogood and roots across the subset's members (§4.F). This is the
// only merge step this engine performs; SME's classical second merge step
// ("maximal consistent subset, then merge") is subsumed by combination
// (§1 Non-goals).
func Merge(subsets [][]*gmap.GMap, log *archivist.Archivist) []*gmap.GMap {
	log.Debug(archivist.DEBUG_LEVEL_TRACE, "merger MERGE begin subsets=", len(subsets))

	out := make([]*gmap.GMap, 0, len(subsets))
	for _, subset := range subsets {
		merged := &gmap.GMap{
			MHs:    map[string]model.MH{},
			Emaps:  map[string]model.MH{},
			Nogood: map[string]model.MH{},
		}
		for _, g := range subset {
			for k, v := range g.MHs {
				merged.MHs[k] = v
			}
			for k, v := range g.Emaps {
				merged.Emaps[k] = v
			}
			for k, v := range g.Nogood {
				merged.Nogood[k] = v
			}
			merged.Roots = append(merged.Roots, g.Roots...)
		}
		out = append(out, merged)
	}

	log.Debug(archivist.DEBUG_LEVEL_TRACE, "merger MERGE done merged=", len(out))
	return out
}
