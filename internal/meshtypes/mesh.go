//-----------------------------------------------------------------------------
/*

Triangle Meshes

The data model for decoded CAD geometry: a Mesh is the triangulated (or,
for DXF, line-strip) surface of a single body. A MeshSet is the ordered
collection of meshes a decoder produces from one file.

*/
//-----------------------------------------------------------------------------

package meshtypes

import (
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

//-----------------------------------------------------------------------------

// Triangle3 is a triangle in 3D space, vertices wound consistently by the decoder.
type Triangle3 struct {
	V [3]v3.Vec
}

// Degenerate reports whether the triangle has zero (within tolerance) area.
func (t *Triangle3) Degenerate(tolerance float64) bool {
	e0 := t.V[1].Sub(t.V[0])
	e1 := t.V[2].Sub(t.V[0])
	return e0.Cross(e1).Length() <= tolerance
}

// Normal returns the (unnormalized winding) face normal of the triangle.
func (t *Triangle3) Normal() v3.Vec {
	e0 := t.V[1].Sub(t.V[0])
	e1 := t.V[2].Sub(t.V[0])
	return e0.Cross(e1)
}

//-----------------------------------------------------------------------------

// Box3 is an axis-aligned 3D bounding box.
type Box3 struct {
	Min, Max v3.Vec
}

// NewBox3 returns the box with the given center and full size.
func NewBox3(center, size v3.Vec) Box3 {
	half := size.DivScalar(2)
	return Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the box extent along each axis.
func (b Box3) Size() v3.Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the box center.
func (b Box3) Center() v3.Vec {
	return b.Min.Add(b.Max).DivScalar(2)
}

// Diagonal returns the length of the box's main diagonal.
func (b Box3) Diagonal() float64 {
	return b.Size().Length()
}

// Extend grows the box (if necessary) to include p.
func (b Box3) Extend(p v3.Vec) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both b and a.
func (b Box3) Union(a Box3) Box3 {
	return Box3{Min: b.Min.Min(a.Min), Max: b.Max.Max(a.Max)}
}

// Empty reports whether the box has not been extended by any point (inverted bounds).
func (b Box3) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// EmptyBox3 returns a box with inverted bounds, ready to be grown with Extend.
func EmptyBox3() Box3 {
	inf := 1e300
	return Box3{
		Min: v3.Vec{X: inf, Y: inf, Z: inf},
		Max: v3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

//-----------------------------------------------------------------------------

// Mesh is a triangulated (or line-strip) surface decoded from one body in a CAD file.
//
// Position is required and non-empty. Normal and Index are optional:
// decoders that only produce a line-strip (DXF) leave both nil. When
// Index is present it must reference valid entries in Position.
type Mesh struct {
	Position []v3.Vec
	Normal   []v3.Vec
	Index    []uint32

	// LineStrip marks meshes synthesized from DXF LINE/POLYLINE entities:
	// Position is an ordered polyline rather than a triangle soup.
	LineStrip bool
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Position)
}

// TriangleCount returns the number of triangles described by Index,
// or by Position directly when Index is absent.
func (m *Mesh) TriangleCount() int {
	if m.LineStrip {
		return 0
	}
	if len(m.Index) > 0 {
		return len(m.Index) / 3
	}
	return len(m.Position) / 3
}

// Triangle returns the i-th triangle of the mesh.
func (m *Mesh) Triangle(i int) Triangle3 {
	if len(m.Index) > 0 {
		return Triangle3{V: [3]v3.Vec{
			m.Position[m.Index[i*3+0]],
			m.Position[m.Index[i*3+1]],
			m.Position[m.Index[i*3+2]],
		}}
	}
	return Triangle3{V: [3]v3.Vec{
		m.Position[i*3+0],
		m.Position[i*3+1],
		m.Position[i*3+2],
	}}
}

// BoundingBox computes the axis-aligned bounding box of the mesh's vertices.
func (m *Mesh) BoundingBox() Box3 {
	bb := EmptyBox3()
	for _, p := range m.Position {
		bb = bb.Extend(p)
	}
	return bb
}

// ComputeNormals fills in per-vertex normals by averaging adjacent face normals,
// when the decoder did not already supply them. A no-op on line-strip meshes.
func (m *Mesh) ComputeNormals() {
	if m.LineStrip || len(m.Normal) == len(m.Position) && len(m.Normal) > 0 {
		return
	}
	acc := make([]v3.Vec, len(m.Position))
	n := m.TriangleCount()
	for i := 0; i < n; i++ {
		t := m.Triangle(i)
		fn := t.Normal().Normalize()
		var idx [3]uint32
		if len(m.Index) > 0 {
			idx = [3]uint32{m.Index[i*3+0], m.Index[i*3+1], m.Index[i*3+2]}
		} else {
			idx = [3]uint32{uint32(i * 3), uint32(i*3 + 1), uint32(i*3 + 2)}
		}
		for _, id := range idx {
			acc[id] = acc[id].Add(fn)
		}
	}
	m.Normal = make([]v3.Vec, len(m.Position))
	for i, a := range acc {
		m.Normal[i] = a.Normalize()
	}
}

//-----------------------------------------------------------------------------

// MeshSet is the ordered collection of meshes decoded from a single file.
// The MeshSet exclusively owns its meshes for the duration of analysis.
type MeshSet struct {
	Meshes []*Mesh
}

// VertexCount returns the total vertex count across all meshes.
func (s *MeshSet) VertexCount() int {
	n := 0
	for _, m := range s.Meshes {
		n += m.VertexCount()
	}
	return n
}

// Empty reports whether the set contains no meshes with any vertices.
func (s *MeshSet) Empty() bool {
	return s.VertexCount() == 0
}

// BoundingBox computes the union bounding box over all meshes in the set.
func (s *MeshSet) BoundingBox() Box3 {
	bb := EmptyBox3()
	for _, m := range s.Meshes {
		if m.VertexCount() == 0 {
			continue
		}
		bb = bb.Union(m.BoundingBox())
	}
	return bb
}

// AllPositions concatenates the position buffers of every mesh in the set.
func (s *MeshSet) AllPositions() []v3.Vec {
	total := 0
	for _, m := range s.Meshes {
		total += len(m.Position)
	}
	out := make([]v3.Vec, 0, total)
	for _, m := range s.Meshes {
		out = append(out, m.Position...)
	}
	return out
}

//-----------------------------------------------------------------------------

// MetadataBag is the loose, optional bag of decoder-reported metadata.
// Every field may be absent; callers must tolerate a zero-value bag.
type MetadataBag struct {
	// Units is the top-level unit hint some decoders report directly.
	Units string
	// Metadata holds free-form nested fields, e.g. "units" reported one level down.
	Metadata map[string]string
	// LengthUnit is the STEP-specific length unit hint.
	LengthUnit string
}

//-----------------------------------------------------------------------------
