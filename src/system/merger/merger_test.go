package merger_test

import (
	"testing"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/gmap"
	"github.com/go-analogy/sme/src/system/merger"
	"github.com/go-analogy/sme/src/system/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnionsMembersOfEachSubset(t *testing.T) {
	heat := model.NewEntity("heat", "Heat")
	fast := model.NewEntity("fast", "Fast")
	sun := model.NewEntity("sun", "Sun")
	star := model.NewEntity("star", "Star")

	m1 := model.MH{Base: heat, Target: fast}
	m2 := model.MH{Base: sun, Target: star}

	g1 := &gmap.GMap{MHs: map[string]model.MH{m1.Key(): m1}, Emaps: map[string]model.MH{m1.Key(): m1}, Nogood: map[string]model.MH{}, Roots: []model.MH{m1}}
	g2 := &gmap.GMap{MHs: map[string]model.MH{m2.Key(): m2}, Emaps: map[string]model.MH{m2.Key(): m2}, Nogood: map[string]model.MH{}, Roots: []model.MH{m2}}

	merged := merger.Merge([][]*gmap.GMap{{g1, g2}}, archivist.New(nil))
	require.Len(t, merged, 1)
	assert.Len(t, merged[0].MHs, 2)
	assert.Contains(t, merged[0].MHs, m1.Key())
	assert.Contains(t, merged[0].MHs, m2.Key())
	assert.Len(t, merged[0].Roots, 2)
}

func TestMergeProducesOneGMapPerSubset(t *testing.T) {
	heat := model.NewEntity("heat", "Heat")
	fast := model.NewEntity("fast", "Fast")
	warm := model.NewEntity("warm", "Warm")

	m1 := model.MH{Base: heat, Target: fast}
	m2 := model.MH{Base: heat, Target: warm}
	g1 := &gmap.GMap{MHs: map[string]model.MH{m1.Key(): m1}, Emaps: map[string]model.MH{}, Nogood: map[string]model.MH{}}
	g2 := &gmap.GMap{MHs: map[string]model.MH{m2.Key(): m2}, Emaps: map[string]model.MH{}, Nogood: map[string]model.MH{}}

	merged := merger.Merge([][]*gmap.GMap{{g1}, {g2}}, archivist.New(nil))
	require.Len(t, merged, 2, "conflicting gmaps never land in the same maximal subset, so merging keeps them apart")
}
