//-----------------------------------------------------------------------------
/*

Geometry Prep

Ensures per-vertex normals and bounding boxes are available, and keeps an
unmodified analysis copy of the decoded meshes separate from any
centered/auto-scaled display copy a viewer would want. The analyzer only
ever consumes the analysis copy.

*/
//-----------------------------------------------------------------------------

package geomprep

import (
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

// Prepared bundles the analysis-ready mesh set with its bounding box.
// DisplayMeshes is deliberately not produced here: display geometry is a
// viewer concern the analyzer never needs.
type Prepared struct {
	Analysis *meshtypes.MeshSet
	BBox     meshtypes.Box3
}

// Prepare computes normals (where absent) and the overall bounding box for
// the decoded mesh set, which is returned as the analysis set itself (no
// copy is made). The input set is not mutated beyond filling in normals
// that were never computed.
func Prepare(ms *meshtypes.MeshSet) Prepared {
	for _, m := range ms.Meshes {
		m.ComputeNormals()
	}
	return Prepared{
		Analysis: ms,
		BBox:     ms.BoundingBox(),
	}
}

//-----------------------------------------------------------------------------
