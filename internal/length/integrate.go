//-----------------------------------------------------------------------------
/*

Numerical Arc-Length Integration

Given an ordered polyline, computes arc length four independent ways and
cross-validates between them. A local Catmull-Rom spline
through each point and its neighbors gives the "speed" function the
quadrature rules integrate; on a perfectly straight, evenly-spaced
polyline that spline reproduces the line exactly, so all four methods
agree and fall back cleanly to the Euclidean sum.

*/
//-----------------------------------------------------------------------------

package length

import (
	"math"

	"gonum.org/v1/gonum/stat"

	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

// IntegratorResult names the winning method and its self-reported confidence.
type IntegratorResult struct {
	Length     float64
	Method     string
	Confidence float64
	OK         bool
}

type integratorCandidate struct {
	length     float64
	confidence float64
	method     string
	ok         bool
}

// ArcLength runs all four integrators over polyline and returns the
// highest-confidence one that succeeded, adjusted by their coefficient of
// variation.
func ArcLength(polyline []v3.Vec) IntegratorResult {
	candidates := []integratorCandidate{
		adaptiveSimpson(polyline),
		gaussLegendre(polyline),
		cubicBSpline(polyline),
		linearSum(polyline),
	}

	var lengths []float64
	best := -1
	for i, c := range candidates {
		if !c.ok {
			continue
		}
		lengths = append(lengths, c.length)
		if best == -1 || c.confidence > candidates[best].confidence {
			best = i
		}
	}
	if best == -1 {
		return IntegratorResult{}
	}

	winner := candidates[best]
	conf := winner.confidence
	if len(lengths) > 1 {
		cv := coefficientOfVariation(lengths)
		switch {
		case cv < 0.15:
			conf = math.Min(0.95, conf+0.05)
		case cv > 0.30:
			conf = math.Max(0.30, conf-0.15)
		}
	}

	return IntegratorResult{Length: winner.length, Method: winner.method, Confidence: conf, OK: true}
}

func coefficientOfVariation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean, sd := stat.MeanStdDev(xs, nil)
	if mean == 0 {
		return 0
	}
	return sd / mean
}

//-----------------------------------------------------------------------------

func linearSum(p []v3.Vec) integratorCandidate {
	if len(p) < 2 {
		return integratorCandidate{}
	}
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += p[i].Sub(p[i-1]).Length()
	}
	return integratorCandidate{length: sum, confidence: 0.60, method: "linear", ok: true}
}

//-----------------------------------------------------------------------------

// catmullRomSpeed returns a function giving the tangent magnitude at
// parameter t in [0,1] along the segment p[i]->p[i+1], using the
// neighboring control points for tangent estimation. Endpoints are
// clamped by duplicating the first/last point.
func catmullRomSpeed(p []v3.Vec, i int) func(t float64) float64 {
	get := func(idx int) v3.Vec {
		if idx < 0 {
			return p[0]
		}
		if idx >= len(p) {
			return p[len(p)-1]
		}
		return p[idx]
	}
	p0, p1, p2, p3 := get(i-1), get(i), get(i+1), get(i+2)

	a := p2.Sub(p0)
	b := p0.MulScalar(2).Sub(p1.MulScalar(5)).Add(p2.MulScalar(4)).Sub(p3)
	c := p3.Sub(p0).Add(p1.MulScalar(3)).Sub(p2.MulScalar(3))

	return func(t float64) float64 {
		d := a.Add(b.MulScalar(2 * t)).Add(c.MulScalar(3 * t * t)).MulScalar(0.5)
		return d.Length()
	}
}

func segmentCount(p []v3.Vec) int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

//-----------------------------------------------------------------------------

const (
	simpsonTolerance = 1e-6
	simpsonMaxDepth  = 10
)

func adaptiveSimpson(p []v3.Vec) integratorCandidate {
	n := segmentCount(p)
	if n == 0 {
		return integratorCandidate{}
	}
	var total float64
	for i := 0; i < n; i++ {
		f := catmullRomSpeed(p, i)
		total += adaptiveSimpsonSegment(f, 0, 1, f(0), f(0.5), f(1), simpsonMaxDepth)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return integratorCandidate{}
	}
	return integratorCandidate{length: total, confidence: 0.85, method: "simpson", ok: true}
}

func adaptiveSimpsonSegment(f func(float64) float64, a, b, fa, fm, fb float64, depth int) float64 {
	m := (a + b) / 2
	whole := (b - a) / 6 * (fa + 4*fm + fb)
	if depth <= 0 {
		return whole
	}
	lm := (a + m) / 2
	rm := (m + b) / 2
	flm, frm := f(lm), f(rm)
	left := (m - a) / 6 * (fa + 4*flm + fm)
	right := (b - m) / 6 * (fm + 4*frm + fb)
	if math.Abs(left+right-whole) <= 15*simpsonTolerance {
		return left + right + (left+right-whole)/15
	}
	return adaptiveSimpsonSegment(f, a, m, fa, flm, fm, depth-1) +
		adaptiveSimpsonSegment(f, m, b, fm, frm, fb, depth-1)
}

//-----------------------------------------------------------------------------

// 5-point Gauss-Legendre nodes/weights on [-1, 1].
var gl5Nodes = [5]float64{
	-0.9061798459386640, -0.5384693101056831, 0,
	0.5384693101056831, 0.9061798459386640,
}
var gl5Weights = [5]float64{
	0.2369268850561891, 0.4786286704993665, 0.5688888888888889,
	0.4786286704993665, 0.2369268850561891,
}

func gaussLegendre(p []v3.Vec) integratorCandidate {
	n := segmentCount(p)
	if n == 0 {
		return integratorCandidate{}
	}
	var total float64
	for i := 0; i < n; i++ {
		f := catmullRomSpeed(p, i)
		var seg float64
		for k := 0; k < 5; k++ {
			t := 0.5*gl5Nodes[k] + 0.5 // map [-1,1] -> [0,1]
			seg += gl5Weights[k] * f(t)
		}
		total += seg * 0.5 // Jacobian of the [-1,1] -> [0,1] mapping.
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return integratorCandidate{}
	}
	return integratorCandidate{length: total, confidence: 0.80, method: "gauss-legendre", ok: true}
}

//-----------------------------------------------------------------------------

const bsplineDegree = 3
const bsplineSamples = 100

// cubicBSpline builds a clamped uniform knot vector over the control
// polyline and sums Euclidean distances between 100 samples along it.
// Falls back to the linear estimator when there are too few control
// points for a degree-3 curve.
func cubicBSpline(p []v3.Vec) integratorCandidate {
	n := len(p)
	if n < bsplineDegree+1 {
		c := linearSum(p)
		if !c.ok {
			return c
		}
		return integratorCandidate{length: c.length, confidence: 0.75, method: "bspline", ok: true}
	}

	knots := clampedUniformKnots(n, bsplineDegree)
	samples := make([]v3.Vec, 0, bsplineSamples+1)
	uMin, uMax := knots[bsplineDegree], knots[n]
	for i := 0; i <= bsplineSamples; i++ {
		u := uMin + (uMax-uMin)*float64(i)/float64(bsplineSamples)
		samples = append(samples, deBoor(p, knots, bsplineDegree, u))
	}
	var total float64
	for i := 1; i < len(samples); i++ {
		total += samples[i].Sub(samples[i-1]).Length()
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return integratorCandidate{}
	}
	return integratorCandidate{length: total, confidence: 0.75, method: "bspline", ok: true}
}

// clampedUniformKnots builds a length n+degree+1 clamped uniform knot
// vector for n control points and the given degree.
func clampedUniformKnots(n, degree int) []float64 {
	m := n + degree + 1
	knots := make([]float64, m)
	interior := n - degree - 1
	for i := 0; i <= degree; i++ {
		knots[i] = 0
		knots[m-1-i] = float64(interior + 1)
	}
	for i := 1; i <= interior; i++ {
		knots[degree+i] = float64(i)
	}
	return knots
}

// deBoor evaluates the B-spline with control points p and knot vector
// knots at parameter u, via de Boor's recursion.
func deBoor(p []v3.Vec, knots []float64, degree int, u float64) v3.Vec {
	n := len(p) - 1
	k := degree
	for i := degree; i < len(knots)-degree-1; i++ {
		if u >= knots[i] && u <= knots[i+1] {
			k = i
			break
		}
	}
	if k < degree {
		k = degree
	}
	if k > n {
		k = n
	}

	d := make([]v3.Vec, degree+1)
	for j := 0; j <= degree; j++ {
		idx := k - degree + j
		if idx < 0 {
			idx = 0
		}
		if idx > n {
			idx = n
		}
		d[j] = p[idx]
	}

	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			idxRight := k - degree + j
			left := knots[idxRight]
			right := knots[minInt(k+j+1-r, len(knots)-1)]
			denom := right - left
			var alpha float64
			if denom != 0 {
				alpha = (u - left) / denom
			}
			d[j] = d[j-1].MulScalar(1 - alpha).Add(d[j].MulScalar(alpha))
		}
	}
	return d[degree]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

//-----------------------------------------------------------------------------
