package length

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

func straightPolyline(n int, length float64) []v3.Vec {
	pts := make([]v3.Vec, n)
	for i := 0; i < n; i++ {
		pts[i] = v3.Vec{X: length * float64(i) / float64(n-1), Y: 0, Z: 0}
	}
	return pts
}

func TestArcLengthStraightLineAllMethodsAgree(t *testing.T) {
	pts := straightPolyline(20, 100)
	r := ArcLength(pts)
	assert.True(t, r.OK)
	assert.InDelta(t, 100, r.Length, 1.0)
}

func TestArcLengthTooShortFails(t *testing.T) {
	r := ArcLength([]v3.Vec{{X: 0}})
	assert.False(t, r.OK)
}

func TestLinearSumMatchesEuclideanDistance(t *testing.T) {
	pts := []v3.Vec{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}}
	c := linearSum(pts)
	assert.True(t, c.ok)
	assert.InDelta(t, 5.0, c.length, 1e-9)
}

func TestCubicBSplineFallsBackToLinearWithFewPoints(t *testing.T) {
	pts := []v3.Vec{{X: 0}, {X: 1}}
	c := cubicBSpline(pts)
	assert.True(t, c.ok)
	assert.InDelta(t, 1.0, c.length, 1e-9)
}

func TestCoefficientOfVariationZeroForIdenticalValues(t *testing.T) {
	assert.Equal(t, 0.0, coefficientOfVariation([]float64{10, 10, 10}))
}
