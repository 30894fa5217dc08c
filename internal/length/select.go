//-----------------------------------------------------------------------------
/*

Selection Across Estimators

Ranks the four length estimators by their own confidence, cross-validates
between whichever succeeded, and returns a single winner. Unit conversion
to millimeters happens in internal/assembler, once the
Unit Resolver's factor is known; this package always reports length in
the mesh's original (authoring) units.

*/
//-----------------------------------------------------------------------------

package length

import (
	"math"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

// Selected is the final centerline-length estimate, plus the per-estimator
// diagnostics a caller may want to surface.
type Selected struct {
	Length      float64
	Method      string
	Confidence  float64
	Diagnostics []string
}

// Select runs all four estimators over ms and picks the best by
// confidence, cross-validated across whichever estimators agree. If the
// bounding box has zero extent (empty geometry), returns method "none"
// and length 0.
func Select(ms *meshtypes.MeshSet, bb meshtypes.Box3) Selected {
	var diags []string
	var candidates []IntegratorResult

	if skel, err := Skeletonize(ms); err == nil {
		candidates = append(candidates, skel.IntegratorResult)
	} else {
		diags = append(diags, err.Error())
	}

	dominant := bb.Size().MaxComponent()
	if pca := PCASlice(ms, dominant); pca.OK {
		candidates = append(candidates, pca)
	} else {
		diags = append(diags, "PCA Slicing skipped: degenerate axis or length below threshold")
	}

	if path := PathSample(ms); path.OK {
		candidates = append(candidates, path)
	} else {
		diags = append(diags, "Path Calculation skipped: insufficient ordering or length below threshold")
	}

	bboxResult := BBoxFallback(bb)
	if bboxResult.OK {
		candidates = append(candidates, bboxResult)
	}

	if len(candidates) == 0 {
		return Selected{Length: 0, Method: "none", Confidence: 0, Diagnostics: diags}
	}

	best := 0
	for i, c := range candidates {
		if c.Confidence > candidates[best].Confidence {
			best = i
		}
	}
	winner := candidates[best]

	if len(candidates) > 1 {
		lengths := make([]float64, len(candidates))
		for i, c := range candidates {
			lengths[i] = c.Length
		}
		cv := coefficientOfVariation(lengths)
		switch {
		case cv < 0.2:
			winner.Confidence = math.Min(0.95, winner.Confidence+0.1)
		case cv > 0.5:
			winner.Confidence = math.Max(0.1, winner.Confidence-0.2)
		}
	}

	return Selected{
		Length:      winner.Length,
		Method:      winner.Method,
		Confidence:  winner.Confidence,
		Diagnostics: diags,
	}
}

//-----------------------------------------------------------------------------
