//-----------------------------------------------------------------------------
/*

Output Assembler

Packages the Length Estimator, Bend Analyzer, and Unit Resolver results
into the AnalysisResult output contract. Pure function of its inputs:
no I/O, no logging beyond the optional diagnostics slice.

*/
//-----------------------------------------------------------------------------

package assembler

import (
	"github.com/cadmetrics/tubeanalyzer/internal/bend"
	"github.com/cadmetrics/tubeanalyzer/internal/length"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	"github.com/cadmetrics/tubeanalyzer/internal/units"
)

//-----------------------------------------------------------------------------

// Vec3 is a plain 3D vector in the output contract, decoupled from the
// internal vec/v3 representation so callers outside this module never
// import it directly.
type Vec3 struct {
	X, Y, Z float64
}

// BoundingBox reports extents in the file's original (pre-normalization)
// units.
type BoundingBox struct {
	Min, Max, Size Vec3
}

// AnalysisResult is the analyzer's output contract.
type AnalysisResult struct {
	TotalLengthMM    float64
	EstimatedBends   int
	EstimatedCuts    int
	Units            string
	OriginalUnits    string
	UnitConfidence   float64
	LengthMethod     string
	LengthConfidence float64
	BoundingBox      BoundingBox
	Diagnostics      []string
}

//-----------------------------------------------------------------------------

// Assemble converts the selected length estimate to millimeters using the
// resolved unit's factor, clamps the bend count to [0, 20] (the cut count
// is passed through as the Bend Analyzer derived it), and packages the
// bounding box in the file's original units.
func Assemble(sel length.Selected, bendResult bend.Result, res units.Resolution, bb meshtypes.Box3, diagnostics []string) AnalysisResult {
	factor := units.FactorToMM(res.Unit)

	size := bb.Size()
	return AnalysisResult{
		TotalLengthMM:    sel.Length * factor,
		EstimatedBends:   clampInt(bendResult.Bends, 0, 20),
		EstimatedCuts:    bendResult.Cuts,
		Units:            string(units.Millimeter),
		OriginalUnits:    string(res.Unit),
		UnitConfidence:   res.Confidence,
		LengthMethod:     methodOrNone(sel),
		LengthConfidence: sel.Confidence,
		BoundingBox: BoundingBox{
			Min:  Vec3{bb.Min.X, bb.Min.Y, bb.Min.Z},
			Max:  Vec3{bb.Max.X, bb.Max.Y, bb.Max.Z},
			Size: Vec3{size.X, size.Y, size.Z},
		},
		Diagnostics: diagnostics,
	}
}

func methodOrNone(sel length.Selected) string {
	if sel.Method == "" {
		return "none"
	}
	return sel.Method
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
