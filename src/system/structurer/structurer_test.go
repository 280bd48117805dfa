package structurer_test

import (
	"testing"

	"github.com/go-analogy/sme/src/system/archivist"
	"github.com/go-analogy/sme/src/system/model"
	"github.com/go-analogy/sme/src/system/structurer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotatePropagatesEmapsAndNogoodUpward(t *testing.T) {
	greater := model.NewPredicate("greater", 2, model.KindRelation)
	heat := model.NewEntity("heat", "Heat")
	cold := model.NewEntity("cold", "Cold")
	fast := model.NewEntity("fast", "Fast")
	slow := model.NewEntity("slow", "Slow")
	warm := model.NewEntity("warm", "Warm")

	exprBase := model.NewExpr(greater).WithID("greater(heat,cold)").Args(heat, cold).Build()
	exprTarget := model.NewExpr(greater).WithID("greater(fast,slow)").Args(fast, slow).Build()

	parent := model.MH{Base: exprBase, Target: exprTarget}
	childHeatFast := model.MH{Base: heat, Target: fast}
	childColdSlow := model.MH{Base: cold, Target: slow}
	// heat->warm never appears under parent's own subtree (parent only maps
	// heat to fast) but shares base "heat" with childHeatFast, so it lands in
	// childHeatFast's nogood and, via propagation, parent's nogood too —
	// without ever entering parent's emaps, since parent's consistency is
	// about its own subtree, not about every MH that merely conflicts with it.
	conflict := model.MH{Base: heat, Target: warm}

	structure := structurer.Annotate([]model.MH{parent, childHeatFast, childColdSlow, conflict}, archivist.New(nil))

	parentRec, ok := structure[parent.Key()]
	require.True(t, ok)
	require.Len(t, parentRec.Children, 2)

	childRec, ok := structure[childHeatFast.Key()]
	require.True(t, ok)
	_, hasConflictInChild := childRec.Nogood[conflict.Key()]
	assert.True(t, hasConflictInChild, "same-base MHs are mutually nogood")

	_, parentHasEmapHeatFast := parentRec.Emaps[childHeatFast.Key()]
	_, parentHasEmapColdSlow := parentRec.Emaps[childColdSlow.Key()]
	assert.True(t, parentHasEmapHeatFast)
	assert.True(t, parentHasEmapColdSlow)

	_, parentHasConflict := parentRec.Nogood[conflict.Key()]
	assert.True(t, parentHasConflict, "nogood propagates up from child to parent")
	_, parentHasConflictAsEmap := parentRec.Emaps[conflict.Key()]
	assert.False(t, parentHasConflictAsEmap)
	assert.True(t, parentRec.Consistent(), "the conflicting MH never entered this subtree's own emaps")

	conflictRec, ok := structure[conflict.Key()]
	require.True(t, ok)
	assert.Empty(t, conflictRec.Children, "a lone emap has no children")
	assert.True(t, conflictRec.Consistent())
}

func TestAnnotateDetectsInconsistencyWithinASingleSubtree(t *testing.T) {
	pair := model.NewPredicate("pair", 2, model.KindRelation)
	heat := model.NewEntity("heat", "Heat")
	fast := model.NewEntity("fast", "Fast")
	warm := model.NewEntity("warm", "Warm")

	// The same base entity appears twice, forced to align with two different
	// target entities by its two argument positions: the subtree rooted at
	// parent can never be internally consistent.
	exprBase := model.NewExpr(pair).WithID("pair(heat,heat)").Args(heat, heat).Build()
	exprTarget := model.NewExpr(pair).WithID("pair(fast,warm)").Args(fast, warm).Build()

	parent := model.MH{Base: exprBase, Target: exprTarget}
	toFast := model.MH{Base: heat, Target: fast}
	toWarm := model.MH{Base: heat, Target: warm}

	structure := structurer.Annotate([]model.MH{parent, toFast, toWarm}, archivist.New(nil))
	parentRec, ok := structure[parent.Key()]
	require.True(t, ok)
	assert.False(t, parentRec.Consistent(), "parent's own subtree contains both sides of a same-base conflict")
}

func TestAnnotateLeavesUnrelatedMHsUntouched(t *testing.T) {
	a := model.NewEntity("a", "A")
	b := model.NewEntity("b", "B")
	m := model.MH{Base: a, Target: b}

	structure := structurer.Annotate([]model.MH{m}, archivist.New(nil))
	rec, ok := structure[m.Key()]
	require.True(t, ok)
	assert.Empty(t, rec.Nogood)
	assert.Len(t, rec.Emaps, 1)
	assert.True(t, rec.Consistent())
}
