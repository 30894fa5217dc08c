package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadmetrics/tubeanalyzer/internal/decode"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

type mockTessellator struct {
	meshes []decode.TessellatedMesh
	meta   decode.TessellatedMetadata
	err    error
}

func (m *mockTessellator) Tessellate(data []byte) ([]decode.TessellatedMesh, decode.TessellatedMetadata, error) {
	return m.meshes, m.meta, m.err
}

func straightTubeSamples(length, radius float64, stations, perStation int) []v3.Vec {
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

func TestAnalyzeStraightTubeProducesPlausibleResult(t *testing.T) {
	mock := &mockTessellator{
		meshes: []decode.TessellatedMesh{{Position: straightTubeSamples(200, 10, 150, 16)}},
		meta:   decode.TessellatedMetadata{Units: "millimeter"},
	}
	a := New(mock)

	res, err := a.Analyze(decode.File{Name: "part.step", Data: []byte("ISO-10303-21;")})
	require.NoError(t, err)
	assert.Equal(t, "millimeter", res.Units)
	assert.Equal(t, "millimeter", res.OriginalUnits)
	assert.Greater(t, res.TotalLengthMM, 100.0)
	assert.LessOrEqual(t, res.EstimatedBends, 2)
	assert.GreaterOrEqual(t, res.EstimatedCuts, 2)
	assert.NotEqual(t, "none", res.LengthMethod)
}

func TestAnalyzeUnsupportedExtensionFails(t *testing.T) {
	a := New(nil)
	_, err := a.Analyze(decode.File{Name: "part.obj", Data: []byte("x")})
	assert.Error(t, err)
}

func TestAnalyzeEmptyGeometryFails(t *testing.T) {
	mock := &mockTessellator{meshes: []decode.TessellatedMesh{{Position: nil}}}
	a := New(mock)
	_, err := a.Analyze(decode.File{Name: "part.step", Data: []byte("x")})
	assert.Error(t, err)
}
