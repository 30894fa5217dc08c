//-----------------------------------------------------------------------------

package bend

import (
	"math"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

// complexityEstimate is a rough bend guess from vertex and triangle
// counts alone, used as a low-weight tie-breaker against the geometric
// sub-methods.
func complexityEstimate(ms *meshtypes.MeshSet) Estimate {
	vertices := ms.VertexCount()
	triangles := 0
	for _, m := range ms.Meshes {
		triangles += m.TriangleCount()
	}

	if vertices < 1 {
		return Estimate{Method: "Complexity", Count: 0, Confidence: 0.3}
	}

	score := math.Log(float64(vertices)) + math.Log(float64(triangles+1))
	bends := 0
	if score > 8 {
		bends = int(math.Floor((score - 8) / 1.5))
	}
	if bends > 10 {
		bends = 10
	}

	return Estimate{Method: "Complexity", Count: bends, Confidence: 0.3}
}
