package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadmetrics/tubeanalyzer/internal/analyzeerr"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

type mockTessellator struct {
	meshes []TessellatedMesh
	meta   TessellatedMetadata
	err    error
}

func (m *mockTessellator) Tessellate(data []byte) ([]TessellatedMesh, TessellatedMetadata, error) {
	return m.meshes, m.meta, m.err
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	a := NewAdapter(nil)
	_, err := a.Decode(File{Name: "part.obj", Data: []byte("x")})
	require.Error(t, err)
	var uf *analyzeerr.UnsupportedFormat
	assert.ErrorAs(t, err, &uf)
}

func TestDecodeStepViaTessellator(t *testing.T) {
	mock := &mockTessellator{
		meshes: []TessellatedMesh{{
			Position: []v3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		}},
		meta: TessellatedMetadata{Units: "millimeter"},
	}
	a := NewAdapter(mock)
	d, err := a.Decode(File{Name: "part.step", Data: []byte("ISO-10303-21;")})
	require.NoError(t, err)
	assert.True(t, d.IsSTEP)
	assert.Equal(t, 3, d.Meshes.VertexCount())
	assert.Equal(t, "millimeter", d.Metadata.Units)
}

func TestDecodeStepZeroVerticesFails(t *testing.T) {
	mock := &mockTessellator{meshes: []TessellatedMesh{{Position: nil}}}
	a := NewAdapter(mock)
	_, err := a.Decode(File{Name: "part.stp", Data: []byte("x")})
	require.Error(t, err)
	var df *analyzeerr.DecodeFailure
	assert.ErrorAs(t, err, &df)
}

func TestDecodeNoTessellatorConfigured(t *testing.T) {
	a := NewAdapter(nil)
	_, err := a.Decode(File{Name: "part.iges", Data: []byte("x")})
	require.Error(t, err)
}

func TestDecodeDXFMalformedFails(t *testing.T) {
	a := NewAdapter(nil)
	_, err := a.Decode(File{Name: "part.dxf", Data: []byte("not a real dxf")})
	require.Error(t, err)
}
