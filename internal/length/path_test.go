package length

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func TestPathSampleStraightOrderedMesh(t *testing.T) {
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: straightPolyline(200, 500)}}}
	r := PathSample(ms)
	assert.True(t, r.OK)
	assert.InDelta(t, 500, r.Length, 25)
}

func TestPathSampleRejectsMultiMesh(t *testing.T) {
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{
		{Position: straightPolyline(10, 50)},
		{Position: straightPolyline(10, 50)},
	}}
	r := PathSample(ms)
	assert.False(t, r.OK)
}

func TestPathSampleRejectsZeroExtentCloud(t *testing.T) {
	// A degenerate, zero-extent point cloud: the bounding-box diagonal is
	// zero, so the estimator must reject.
	pts := make([]v3.Vec, 60)
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: pts}}}
	r := PathSample(ms)
	assert.False(t, r.OK)
}
