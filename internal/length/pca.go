//-----------------------------------------------------------------------------
/*

PCA Slicing

Finds the dominant axis of the sampled surface by power iteration over
the 3x3 covariance matrix, slices the samples into slabs along that
axis, and sums the smoothed slab-centroid polyline length.

*/
//-----------------------------------------------------------------------------

package length

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

const (
	pcaMaxSamples       = 2000
	pcaPowerIterations  = 20
	pcaSlabCount        = 120
	pcaSmoothingRadius  = 3 // window radius 3 -> length-7 moving average
	pcaAcceptanceRatio  = 0.8
)

// PCASlice samples up to pcaMaxSamples points from ms, finds its dominant
// axis, and measures the smoothed slab-centroid polyline along it.
func PCASlice(ms *meshtypes.MeshSet, bboxDominantDim float64) IntegratorResult {
	samples := stridedSample(ms.AllPositions(), pcaMaxSamples)
	if len(samples) < 3 {
		return IntegratorResult{}
	}

	mean := centroid(samples)
	axis, ok := dominantAxis(samples, mean)
	if !ok {
		return IntegratorResult{}
	}

	slabs := sliceIntoSlabs(samples, mean, axis, pcaSlabCount)
	centroids := make([]v3.Vec, 0, len(slabs))
	for _, s := range slabs {
		if len(s) == 0 {
			continue
		}
		centroids = append(centroids, centroid(s))
	}
	if len(centroids) < 2 {
		return IntegratorResult{}
	}

	smoothed := movingAverage(centroids, pcaSmoothingRadius)

	var sum float64
	for i := 1; i < len(smoothed); i++ {
		sum += smoothed[i].Sub(smoothed[i-1]).Length()
	}

	if bboxDominantDim > 0 && sum < pcaAcceptanceRatio*bboxDominantDim {
		return IntegratorResult{}
	}
	return IntegratorResult{Length: sum, Method: "PCA Slicing", Confidence: 0.7, OK: true}
}

//-----------------------------------------------------------------------------

func stridedSample(pts []v3.Vec, max int) []v3.Vec {
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

func centroid(pts []v3.Vec) v3.Vec {
	var sum v3.Vec
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.DivScalar(float64(len(pts)))
}

// dominantAxis extracts the principal eigenvector of the 3x3 covariance
// matrix of pts via power iteration, restarting with a different seed
// if the initial axis degenerates.
func dominantAxis(pts []v3.Vec, mean v3.Vec) (v3.Vec, bool) {
	cov := covariance(pts, mean)

	seeds := []v3.Vec{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}
	for _, seed := range seeds {
		axis, ok := powerIterate(cov, seed)
		if ok {
			return axis, true
		}
	}
	return v3.Vec{}, false
}

func covariance(pts []v3.Vec, mean v3.Vec) *mat.Dense {
	cov := mat.NewDense(3, 3, nil)
	for _, p := range pts {
		d := p.Sub(mean)
		dv := []float64{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov.Set(i, j, cov.At(i, j)+dv[i]*dv[j])
			}
		}
	}
	cov.Scale(1/float64(len(pts)), cov)
	return cov
}

func powerIterate(cov *mat.Dense, seed v3.Vec) (v3.Vec, bool) {
	v := []float64{seed.X, seed.Y, seed.Z}
	var next mat.VecDense
	for i := 0; i < pcaPowerIterations; i++ {
		next.MulVec(cov, mat.NewVecDense(3, v))
		n := mat.Norm(&next, 2)
		if n < 1e-12 || math.IsNaN(n) {
			return v3.Vec{}, false
		}
		v = []float64{next.AtVec(0) / n, next.AtVec(1) / n, next.AtVec(2) / n}
	}
	axis := v3.Vec{X: v[0], Y: v[1], Z: v[2]}
	if !axis.IsFinite() || axis.Length() < 0.5 {
		return v3.Vec{}, false
	}
	return axis.Normalize(), true
}

func sliceIntoSlabs(pts []v3.Vec, mean, axis v3.Vec, slabCount int) [][]v3.Vec {
	proj := make([]float64, len(pts))
	minP, maxP := math.Inf(1), math.Inf(-1)
	for i, p := range pts {
		t := p.Sub(mean).Dot(axis)
		proj[i] = t
		if t < minP {
			minP = t
		}
		if t > maxP {
			maxP = t
		}
	}
	span := maxP - minP
	slabs := make([][]v3.Vec, slabCount)
	if span <= 0 {
		slabs[0] = pts
		return slabs
	}
	for i, t := range proj {
		idx := int((t - minP) / span * float64(slabCount))
		if idx >= slabCount {
			idx = slabCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		slabs[idx] = append(slabs[idx], pts[i])
	}
	return slabs
}

// movingAverage applies a (2*radius+1)-wide moving average along the
// ordered centroid sequence.
func movingAverage(pts []v3.Vec, radius int) []v3.Vec {
	out := make([]v3.Vec, len(pts))
	for i := range pts {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius
		if hi >= len(pts) {
			hi = len(pts) - 1
		}
		var sum v3.Vec
		count := 0
		for j := lo; j <= hi; j++ {
			sum = sum.Add(pts[j])
			count++
		}
		out[i] = sum.DivScalar(float64(count))
	}
	return out
}

//-----------------------------------------------------------------------------
