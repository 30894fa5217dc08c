//-----------------------------------------------------------------------------
/*

Bounding-Box Fallback

Always available, lowest-confidence centerline-length estimate. Used
when every other estimator is skipped, and as a cross-validation signal
otherwise.

*/
//-----------------------------------------------------------------------------

package length

import (
	"math"
	"sort"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

// BBoxFallback sorts the bounding-box dimensions descending and reports a
// length estimate from the longest axis, penalizing boxes that are not
// slender (a cube-ish box is unlikely to be a single straight segment).
func BBoxFallback(bb meshtypes.Box3) IntegratorResult {
	size := bb.Size()
	dims := []float64{size.X, size.Y, size.Z}
	sort.Sort(sort.Reverse(sort.Float64Slice(dims)))
	l, c := dims[0], (dims[1]+dims[2])/2

	if l <= 0 {
		return IntegratorResult{}
	}
	if c <= 0 {
		return IntegratorResult{Length: l, Method: "Bounding Box", Confidence: 0.5, OK: true}
	}

	if l > 3*c {
		return IntegratorResult{Length: l, Method: "Bounding Box", Confidence: 0.5, OK: true}
	}
	scale := math.Max(1, math.Sqrt(l/c))
	return IntegratorResult{Length: l * scale, Method: "Bounding Box", Confidence: 0.2, OK: true}
}

//-----------------------------------------------------------------------------
