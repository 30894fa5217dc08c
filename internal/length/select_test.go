package length

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

func TestSelectZeroBBoxReturnsNone(t *testing.T) {
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: nil}}}
	s := Select(ms, box(0, 0, 0))
	assert.Equal(t, "none", s.Method)
	assert.Equal(t, 0.0, s.Length)
}

func TestSelectStraightRodPicksSomeEstimator(t *testing.T) {
	pts := cylinderSamples(100, 5, 100, 24)
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: pts}}}
	bb := ms.BoundingBox()

	s := Select(ms, bb)
	assert.NotEqual(t, "none", s.Method)
	assert.InDelta(t, 100, s.Length, 15)
	assert.GreaterOrEqual(t, s.Confidence, 0.0)
	assert.LessOrEqual(t, s.Confidence, 1.0)
}
