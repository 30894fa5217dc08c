package length

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func cylinderSamples(length, radius float64, stations, perStation int) []v3.Vec {
	pts := make([]v3.Vec, 0, stations*perStation)
	for i := 0; i < stations; i++ {
		x := length * float64(i) / float64(stations-1)
		for j := 0; j < perStation; j++ {
			theta := 2 * math.Pi * float64(j) / float64(perStation)
			pts = append(pts, v3.Vec{X: x, Y: radius * math.Cos(theta), Z: radius * math.Sin(theta)})
		}
	}
	return pts
}

func TestPCASliceStraightCylinder(t *testing.T) {
	pts := cylinderSamples(200, 10, 150, 20)
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: pts}}}

	r := PCASlice(ms, 200)
	require.True(t, r.OK)
	assert.InDelta(t, 200, r.Length, 20)
}

func TestPCASliceRejectsShortResult(t *testing.T) {
	// A flat disc: the dominant axis has almost no extent, so the slab
	// polyline length must fall below 0.8x the (large, unrelated) bbox
	// dimension supplied here and the estimator must reject.
	pts := make([]v3.Vec, 0, 200)
	for j := 0; j < 200; j++ {
		theta := 2 * math.Pi * float64(j) / 200
		pts = append(pts, v3.Vec{X: 0, Y: 10 * math.Cos(theta), Z: 10 * math.Sin(theta)})
	}
	ms := &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{{Position: pts}}}
	r := PCASlice(ms, 1000)
	assert.False(t, r.OK)
}
