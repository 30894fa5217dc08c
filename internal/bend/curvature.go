//-----------------------------------------------------------------------------

package bend

import (
	"math"

	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

const curvatureMaxSamples = 100

// curvatureEstimate is a 5-point stencil turning-angle sum evaluated at
// each interior sample, counting indices whose combined turning exceeds
// 0.2 rad.
func curvatureEstimate(pts []v3.Vec) Estimate {
	samples := strided(pts, curvatureMaxSamples)
	if len(samples) < 5 {
		return Estimate{Method: "Curvature", Count: 0, Confidence: 0}
	}

	turn := make([]float64, len(samples))
	for i := 1; i < len(samples)-1; i++ {
		turn[i] = angleBetween(samples[i].Sub(samples[i-1]), samples[i+1].Sub(samples[i]))
	}

	count := 0
	for i := 2; i < len(samples)-2; i++ {
		stencil := math.Abs(turn[i]-turn[i-1]) + math.Abs(turn[i+1]-turn[i])
		if stencil > 0.2 {
			count++
		}
	}

	bends := count / 3
	confidence := math.Min(0.9, 0.5+float64(len(samples))/200)
	return Estimate{Method: "Curvature", Count: bends, Confidence: confidence}
}

//-----------------------------------------------------------------------------

func strided(pts []v3.Vec, max int) []v3.Vec {
	if len(pts) <= max {
		return pts
	}
	stride := (len(pts) + max - 1) / max
	if stride < 1 {
		stride = 1
	}
	out := make([]v3.Vec, 0, max)
	for i := 0; i < len(pts); i += stride {
		out = append(out, pts[i])
	}
	return out
}
