//-----------------------------------------------------------------------------
/*

B-Rep Tessellator

STEP and IGES files describe boundary representations (B-reps); turning
one into a triangle mesh requires a geometry kernel this repository does
not implement (typically a native or WASM-wrapped tessellator).

That kernel is modeled here as an explicit, injected dependency rather
than a cached global: the decoder adapter takes a Tessellator and calls
it directly, so callers control its lifetime and reentrancy instead of
the package reaching for global state.

*/
//-----------------------------------------------------------------------------

package decode

import (
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

// TessellatedMesh is the uniform shape a B-rep tessellator returns for one
// body: a required position buffer, and optional normal/index buffers.
type TessellatedMesh struct {
	Position []v3.Vec
	Normal   []v3.Vec // optional
	Index    []uint32 // optional
}

// TessellatedMetadata is whatever loose metadata the tessellator surfaced
// alongside the geometry (units, length unit, free-form fields).
type TessellatedMetadata struct {
	Units         string
	MetadataUnits string
	LengthUnit    string
}

// Tessellator converts STEP or IGES bytes into triangle meshes. A real
// implementation wraps a native or WASM geometry kernel; this repository
// treats it as an opaque boundary.
type Tessellator interface {
	Tessellate(data []byte) ([]TessellatedMesh, TessellatedMetadata, error)
}

//-----------------------------------------------------------------------------
