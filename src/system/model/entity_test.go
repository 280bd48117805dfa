package model_test

import (
	"testing"

	"github.com/go-analogy/sme/src/system/model"
	"github.com/stretchr/testify/assert"
)

func TestContentEqualRoundsHalfUpToTwoDecimals(t *testing.T) {
	a := model.NewEntity("a", "A", model.Attribute{Name: "x", Value: 1.004}, model.Attribute{Name: "y", Value: "a"})
	b := model.NewEntity("b", "B", model.Attribute{Name: "x", Value: 1.001}, model.Attribute{Name: "y", Value: "a"})
	assert.True(t, a.ContentEqual(b, nil), "1.004 and 1.001 both round to 1.00")

	c := model.NewEntity("c", "C", model.Attribute{Name: "x", Value: 1.006}, model.Attribute{Name: "y", Value: "a"})
	assert.False(t, a.ContentEqual(c, nil), "1.00 vs 1.01 must not compare equal")
}

func TestContentEqualDropsUnmatchedAttributesFirst(t *testing.T) {
	a := model.NewEntity("a", "A", model.Attribute{Name: "id", Value: "A1"}, model.Attribute{Name: "x", Value: 1.0})
	b := model.NewEntity("b", "B", model.Attribute{Name: "id", Value: "B1"}, model.Attribute{Name: "x", Value: 1.0})

	assert.False(t, a.ContentEqual(b, nil))
	assert.True(t, a.ContentEqual(b, map[string]bool{"id": true}))
}

func TestContentEqualRequiresSameAttributeNameList(t *testing.T) {
	a := model.NewEntity("a", "A", model.Attribute{Name: "x", Value: 1.0})
	b := model.NewEntity("b", "B", model.Attribute{Name: "x", Value: 1.0}, model.Attribute{Name: "y", Value: 2.0})
	assert.False(t, a.ContentEqual(b, nil))
}
