package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadmetrics/tubeanalyzer/internal/bend"
	"github.com/cadmetrics/tubeanalyzer/internal/length"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	"github.com/cadmetrics/tubeanalyzer/internal/units"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func TestAssembleConvertsInchesToMillimeters(t *testing.T) {
	sel := length.Selected{Length: 10, Method: "Path Calculation", Confidence: 0.6}
	br := bend.Result{Bends: 2, Cuts: 2, Confidence: 0.7, Method: "Curvature"}
	res := units.Resolution{Unit: units.Inch, Confidence: 0.9, Source: "metadata"}
	bb := meshtypes.Box3{Min: v3.Vec{}, Max: v3.Vec{X: 10, Y: 1, Z: 1}}

	r := Assemble(sel, br, res, bb, nil)
	assert.InDelta(t, 254.0, r.TotalLengthMM, 1e-9)
	assert.Equal(t, "millimeter", r.Units)
	assert.Equal(t, "inch", r.OriginalUnits)
	assert.Equal(t, 2, r.EstimatedBends)
	assert.Equal(t, 2, r.EstimatedCuts)
	assert.Equal(t, "Path Calculation", r.LengthMethod)
	assert.Equal(t, 10.0, r.BoundingBox.Max.X)
}

func TestAssembleReportsNoneMethod(t *testing.T) {
	sel := length.Selected{}
	br := bend.Result{}
	res := units.Resolution{Unit: units.Millimeter}
	bb := meshtypes.Box3{}

	r := Assemble(sel, br, res, bb, []string{"no estimator succeeded"})
	assert.Equal(t, "none", r.LengthMethod)
	assert.Equal(t, 0.0, r.TotalLengthMM)
	assert.Len(t, r.Diagnostics, 1)
}

func TestAssembleClampsBendsToTwenty(t *testing.T) {
	sel := length.Selected{Length: 1, Method: "Bounding Box", Confidence: 0.2}
	br := bend.Result{Bends: 25, Cuts: 10}
	res := units.Resolution{Unit: units.Millimeter, Confidence: 0.5}
	bb := meshtypes.Box3{}

	r := Assemble(sel, br, res, bb, nil)
	assert.Equal(t, 20, r.EstimatedBends)
}
