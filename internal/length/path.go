//-----------------------------------------------------------------------------
/*

Path Sampling

On a single-mesh input, picks 50 positions evenly indexed across the
position buffer and sums consecutive distances. Occasionally the
tessellator emits an already-ordered vertex buffer (e.g. an extrusion
path); this estimator is lossy but catches those cases cheaply.

*/
//-----------------------------------------------------------------------------

package length

import (
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

const pathSampleCount = 50
const pathAcceptanceRatio = 0.8

// PathSample is only meaningful on a single-mesh MeshSet: ordering across
// independently-tessellated bodies is not defined.
func PathSample(ms *meshtypes.MeshSet) IntegratorResult {
	if len(ms.Meshes) != 1 {
		return IntegratorResult{}
	}
	m := ms.Meshes[0]
	if len(m.Position) < 2 {
		return IntegratorResult{}
	}

	n := pathSampleCount
	if n > len(m.Position) {
		n = len(m.Position)
	}
	samples := make([]int, n)
	for i := 0; i < n; i++ {
		samples[i] = i * (len(m.Position) - 1) / (n - 1)
	}

	var sum float64
	for i := 1; i < len(samples); i++ {
		sum += m.Position[samples[i]].Sub(m.Position[samples[i-1]]).Length()
	}

	diag := m.BoundingBox().Diagonal()
	if diag <= 0 || sum < pathAcceptanceRatio*diag {
		return IntegratorResult{}
	}
	return IntegratorResult{Length: sum, Method: "Path Calculation", Confidence: 0.6, OK: true}
}

//-----------------------------------------------------------------------------
