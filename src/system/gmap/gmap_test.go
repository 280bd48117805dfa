package gmap_test

import (
	"testing"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/gmap"
	"github.com/go-analogy/sme/src/system/model"
	"github.com/go-analogy/sme/src/system/structurer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootsExcludesChildren(t *testing.T) {
	greater := model.NewPredicate("greater", 2, model.KindRelation)
	heat := model.NewEntity("heat", "Heat")
	cold := model.NewEntity("cold", "Cold")
	fast := model.NewEntity("fast", "Fast")
	slow := model.NewEntity("slow", "Slow")

	exprBase := model.NewExpr(greater).WithID("greater(heat,cold)").Args(heat, cold).Build()
	exprTarget := model.NewExpr(greater).WithID("greater(fast,slow)").Args(fast, slow).Build()
	parent := model.MH{Base: exprBase, Target: exprTarget}
	childA := model.MH{Base: heat, Target: fast}
	childB := model.MH{Base: cold, Target: slow}

	structure := structurer.Annotate([]model.MH{parent, childA, childB}, archivist.New(nil))
	roots := gmap.Roots(structure)
	require.Len(t, roots, 1)
	assert.Equal(t, parent.Key(), roots[0].Key())
}

func TestBuildSplitsAnInconsistentRootIntoConsistentChildGMaps(t *testing.T) {
	pair := model.NewPredicate("pair", 2, model.KindRelation)
	heat := model.NewEntity("heat", "Heat")
	fast := model.NewEntity("fast", "Fast")
	warm := model.NewEntity("warm", "Warm")

	exprBase := model.NewExpr(pair).WithID("pair(heat,heat)").Args(heat, heat).Build()
	exprTarget := model.NewExpr(pair).WithID("pair(fast,warm)").Args(fast, warm).Build()
	parent := model.MH{Base: exprBase, Target: exprTarget}
	toFast := model.MH{Base: heat, Target: fast}
	toWarm := model.MH{Base: heat, Target: warm}

	structure := structurer.Annotate([]model.MH{parent, toFast, toWarm}, archivist.New(nil))
	gmaps := gmap.Build(structure, archivist.New(nil))

	require.Len(t, gmaps, 2, "parent itself is inconsistent, so it splits into its two children")
	for _, g := range gmaps {
		assert.True(t, g.Consistent())
	}
}

func TestBuildEmitsOneGMapPerConsistentRoot(t *testing.T) {
	a := model.NewEntity("a", "A")
	b := model.NewEntity("b", "B")
	m := model.MH{Base: a, Target: b}
	structure := structurer.Annotate([]model.MH{m}, archivist.New(nil))

	gmaps := gmap.Build(structure, archivist.New(nil))
	require.Len(t, gmaps, 1)
	assert.Len(t, gmaps[0].MHs, 1)
	assert.Contains(t, gmaps[0].MHs, m.Key())
}

func TestMutuallyConsistentRejectsOverlappingNogood(t *testing.T) {
	a := model.NewEntity("a", "A")
	b := model.NewEntity("b", "B")
	c := model.NewEntity("c", "C")
	m1 := model.MH{Base: a, Target: b}
	m2 := model.MH{Base: a, Target: c}

	structure := structurer.Annotate([]model.MH{m1, m2}, archivist.New(nil))
	gmaps := gmap.Build(structure, archivist.New(nil))
	require.Len(t, gmaps, 2)

	assert.False(t, gmap.MutuallyConsistent(gmaps[0], gmaps[1]), "both map base entity a, to different targets")
}
