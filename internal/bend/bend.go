//-----------------------------------------------------------------------------
/*

Bend Analyzer

Estimates the number of bends in a tube's centerline by running three
independent sub-methods (curvature, direction-change, complexity
heuristic) and combining the top two by confidence. A slenderness guard
clamps implausible counts for near-straight parts.

*/
//-----------------------------------------------------------------------------

package bend

import (
	"math"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

//-----------------------------------------------------------------------------

// Estimate is a single sub-method's bend count and confidence.
type Estimate struct {
	Method     string
	Count      int
	Confidence float64
}

// Result is the analyzer's final, guarded bend count.
type Result struct {
	Bends      int
	Cuts       int
	Confidence float64
	Method     string
}

//-----------------------------------------------------------------------------

// Analyze runs all three sub-methods against the mesh set's concatenated
// vertex stream and the overall bounding box, selects the top two by
// confidence, and applies the slenderness guard.
func Analyze(ms *meshtypes.MeshSet, bb meshtypes.Box3) Result {
	pts := ms.AllPositions()

	estimates := []Estimate{
		curvatureEstimate(pts),
		directionChangeEstimate(pts),
		complexityEstimate(ms),
	}

	top := topTwoByConfidence(estimates)
	bends, conf, method := combine(top)

	bends = slendernessGuard(bb, top, bends, &conf)
	if bends < 0 {
		bends = 0
	}
	if bends > 20 {
		bends = 20
	}

	cuts := 2
	if bends > 3 {
		cuts += bends / 3
	}

	return Result{Bends: bends, Cuts: cuts, Confidence: conf, Method: method}
}

//-----------------------------------------------------------------------------

func topTwoByConfidence(all []Estimate) []Estimate {
	out := make([]Estimate, len(all))
	copy(out, all)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Confidence > out[i].Confidence {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > 2 {
		out = out[:2]
	}
	return out
}

// combine computes the confidence-weighted average of the top methods'
// counts, rounded, reporting the leading method's confidence as final.
func combine(top []Estimate) (int, float64, string) {
	if len(top) == 0 {
		return 0, 0, "none"
	}
	var weightedSum, weightTotal float64
	for _, e := range top {
		weightedSum += float64(e.Count) * e.Confidence
		weightTotal += e.Confidence
	}
	if weightTotal == 0 {
		return 0, top[0].Confidence, top[0].Method
	}
	avg := weightedSum / weightTotal
	return int(math.Round(avg)), top[0].Confidence, top[0].Method
}

//-----------------------------------------------------------------------------

// slendernessGuard applies a cascade of clamps driven by the ratio of
// the longest to second-longest bounding-box axis.
func slendernessGuard(bb meshtypes.Box3, top []Estimate, bends int, conf *float64) int {
	size := bb.Size()
	dims := []float64{size.X, size.Y, size.Z}
	sortDescending(dims)
	second := dims[1]
	if second < 1e-3 {
		second = 1e-3
	}
	s := dims[0] / second

	topReportsAtMostOne := len(top) > 0 && top[0].Count <= 1
	eitherCurvatureOrDirectionAtMostOne := false
	for _, e := range top {
		if (e.Method == "Curvature" || e.Method == "Direction Change") && e.Count <= 1 {
			eitherCurvatureOrDirectionAtMostOne = true
		}
	}

	if s > 10 && topReportsAtMostOne {
		bends = top[0].Count
	}
	if s > 12 && eitherCurvatureOrDirectionAtMostOne && bends > 1 {
		bends = 1
	}
	if s > 18 {
		bends = 0
		if s > 30 && *conf > 0.6 {
			*conf = 0.6
		}
	}
	return bends
}

func sortDescending(v []float64) {
	for i := 0; i < len(v); i++ {
		for j := i + 1; j < len(v); j++ {
			if v[j] > v[i] {
				v[i], v[j] = v[j], v[i]
			}
		}
	}
}

//-----------------------------------------------------------------------------

func angleBetween(a, b v3.Vec) float64 {
	na, nb := a.Length(), b.Length()
	if na < 1e-12 || nb < 1e-12 {
		return 0
	}
	cos := a.Dot(b) / (na * nb)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
