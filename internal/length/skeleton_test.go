package length

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadmetrics/tubeanalyzer/internal/analyzeerr"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

func TestSkeletonizeTooFewSamplesSkipped(t *testing.T) {
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: cylinderSamples(10, 2, 2, 4)}}}
	_, err := Skeletonize(ms)
	require.Error(t, err)
	var skipped *analyzeerr.EstimatorSkipped
	assert.ErrorAs(t, err, &skipped)
}

func TestSkeletonizeStraightRod(t *testing.T) {
	pts := cylinderSamples(100, 4, 120, 24)
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: pts}}}

	r, err := Skeletonize(ms)
	require.NoError(t, err)
	assert.Equal(t, "3D Skeletonization", r.Method)
	assert.InDelta(t, 100, r.Length, 20)
	assert.Greater(t, r.Confidence, 0.0)
}
