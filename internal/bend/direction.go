//-----------------------------------------------------------------------------

package bend

import (
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

const directionMaxSamples = 50

// directionChangeEstimate counts wide-angle direction changes between
// two-step-ahead chords.
func directionChangeEstimate(pts []v3.Vec) Estimate {
	samples := strided(pts, directionMaxSamples)
	if len(samples) < 5 {
		return Estimate{Method: "Direction Change", Count: 0, Confidence: 0.7}
	}

	count := 0
	for i := 2; i < len(samples)-2; i++ {
		dirIn := samples[i].Sub(samples[i-2])
		dirOut := samples[i+2].Sub(samples[i])
		if angleBetween(dirIn, dirOut) > 0.5 {
			count++
		}
	}

	return Estimate{Method: "Direction Change", Count: count / 2, Confidence: 0.7}
}
