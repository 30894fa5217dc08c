//-----------------------------------------------------------------------------
/*

3D Skeletonization

Surface-samples the mesh set, rasterizes it into a voxel grid, runs a
6-connected distance transform off the surface, extracts the medial axis
as the set of interior local-maxima voxels, orders them into a single
path, and numerically integrates that path's arc length.

The medial-axis points are indexed in an R-tree (github.com/dhconnelly/rtreego)
for the "neighbors within 2s" endpoint test and for the greedy
nearest-unvisited-point traversal — both are nearest-neighbor queries an
R-tree answers far faster than the O(n^2) scan a slice would need.

*/
//-----------------------------------------------------------------------------

package length

import (
	"errors"
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/cadmetrics/tubeanalyzer/internal/analyzeerr"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	"github.com/cadmetrics/tubeanalyzer/vec/conv"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
	"github.com/cadmetrics/tubeanalyzer/vec/v3i"
)

const (
	skeletonTargetSamples  = 3000
	skeletonMinSamples     = 50
	skeletonTargetVoxels   = 80
	skeletonMinMedial      = 2
	skeletonSpacingSamples = 100
	rtreeMinChildren       = 2
	rtreeMaxChildren       = 8
)

// SkeletonizeResult carries the estimator's length and method, with a
// confidence that combines skeleton quality and the integrator's confidence.
type SkeletonizeResult struct {
	IntegratorResult
}

// Skeletonize runs the full 3D-skeletonization estimator over ms.
// Returns an EstimatorSkipped error (non-fatal) when there are too few
// surface samples or too few medial-axis voxels to form a path.
func Skeletonize(ms *meshtypes.MeshSet) (SkeletonizeResult, error) {
	all := ms.AllPositions()
	samples := stridedSample(all, skeletonTargetSamples)
	if len(samples) < skeletonMinSamples {
		return SkeletonizeResult{}, &analyzeerr.EstimatorSkipped{
			Estimator: "3D Skeletonization", Reason: "fewer than 50 surface samples",
		}
	}

	grid := buildVoxelGrid(samples, skeletonTargetVoxels)
	dist := grid.distanceTransform()
	medialIdx := grid.medialAxis(dist)
	if len(medialIdx) < skeletonMinMedial {
		return SkeletonizeResult{}, &analyzeerr.EstimatorSkipped{
			Estimator: "3D Skeletonization", Reason: "fewer than 2 medial-axis voxels",
		}
	}

	medialPts := make([]v3.Vec, len(medialIdx))
	for i, vi := range medialIdx {
		medialPts[i] = grid.voxelCenter(vi)
	}

	ordered, err := orderMedialPath(medialPts)
	if err != nil {
		return SkeletonizeResult{}, &analyzeerr.EstimatorSkipped{
			Estimator: "3D Skeletonization", Reason: err.Error(),
		}
	}

	integ := ArcLength(ordered)
	if !integ.OK {
		return SkeletonizeResult{}, &analyzeerr.EstimatorSkipped{
			Estimator: "3D Skeletonization", Reason: "arc-length integration failed",
		}
	}

	smoothness := pathSmoothness(ordered)
	coverage := math.Min(1, float64(len(ordered))/(0.01*float64(len(samples))))
	skeletonConfidence := 0.7*smoothness + 0.3*coverage
	finalConfidence := 0.6*skeletonConfidence + 0.4*integ.Confidence

	return SkeletonizeResult{IntegratorResult{
		Length:     integ.Length,
		Method:     "3D Skeletonization",
		Confidence: finalConfidence,
		OK:         true,
	}}, nil
}

//-----------------------------------------------------------------------------

type voxelGrid struct {
	base      v3.Vec
	voxelSize float64
	dim       v3i.Vec
	occupied  []bool
}

func (g *voxelGrid) index(x, y, z int) int {
	return (x*g.dim.Y+y)*g.dim.Z + z
}

func (g *voxelGrid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.dim.X && y >= 0 && y < g.dim.Y && z >= 0 && z < g.dim.Z
}

func (g *voxelGrid) voxelCenter(vi v3i.Vec) v3.Vec {
	return conv.V3iToV3(vi).AddScalar(0.5).MulScalar(g.voxelSize).Add(g.base)
}

// buildVoxelGrid picks a resolution so the longest sample-bbox axis spans
// targetVoxels cells, and marks every voxel containing a sample as occupied.
func buildVoxelGrid(samples []v3.Vec, targetVoxels int) *voxelGrid {
	bb := meshtypes.EmptyBox3()
	for _, p := range samples {
		bb = bb.Extend(p)
	}
	size := bb.Size()
	longest := size.MaxComponent()
	if longest <= 0 {
		longest = 1
	}
	voxelSize := longest / float64(targetVoxels)
	if voxelSize <= 0 {
		voxelSize = 1
	}

	dim := v3i.Vec{
		X: maxI(1, int(math.Ceil(size.X/voxelSize))+1),
		Y: maxI(1, int(math.Ceil(size.Y/voxelSize))+1),
		Z: maxI(1, int(math.Ceil(size.Z/voxelSize))+1),
	}

	g := &voxelGrid{base: bb.Min, voxelSize: voxelSize, dim: dim}
	g.occupied = make([]bool, dim.X*dim.Y*dim.Z)
	for _, p := range samples {
		rel := p.Sub(bb.Min)
		x := clampI(int(rel.X/voxelSize), 0, dim.X-1)
		y := clampI(int(rel.Y/voxelSize), 0, dim.Y-1)
		z := clampI(int(rel.Z/voxelSize), 0, dim.Z-1)
		g.occupied[g.index(x, y, z)] = true
	}
	return g
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

//-----------------------------------------------------------------------------

const infDist = math.MaxInt32

// distanceTransform relaxes a 6-connected integer distance field from the
// occupied (surface) voxels inward, bounded by the longest grid axis.
func (g *voxelGrid) distanceTransform() []int {
	n := len(g.occupied)
	dist := make([]int, n)
	for i, occ := range g.occupied {
		if occ {
			dist[i] = 0
		} else {
			dist[i] = infDist
		}
	}

	maxIter := g.dim.X
	if g.dim.Y > maxIter {
		maxIter = g.dim.Y
	}
	if g.dim.Z > maxIter {
		maxIter = g.dim.Z
	}

	type off struct{ dx, dy, dz int }
	neighbors6 := []off{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for x := 0; x < g.dim.X; x++ {
			for y := 0; y < g.dim.Y; y++ {
				for z := 0; z < g.dim.Z; z++ {
					i := g.index(x, y, z)
					best := dist[i]
					for _, o := range neighbors6 {
						nx, ny, nz := x+o.dx, y+o.dy, z+o.dz
						if !g.inBounds(nx, ny, nz) {
							continue
						}
						nd := dist[g.index(nx, ny, nz)]
						if nd != infDist && nd+1 < best {
							best = nd + 1
						}
					}
					if best < dist[i] {
						dist[i] = best
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist
}

// medialAxis returns the voxel indices with distance >= 2 that are strict
// local maxima of dist within their 26-neighborhood.
func (g *voxelGrid) medialAxis(dist []int) []v3i.Vec {
	var out []v3i.Vec
	for x := 0; x < g.dim.X; x++ {
		for y := 0; y < g.dim.Y; y++ {
			for z := 0; z < g.dim.Z; z++ {
				d := dist[g.index(x, y, z)]
				if d < 2 || d == infDist {
					continue
				}
				if g.isLocalMax26(dist, x, y, z, d) {
					out = append(out, v3i.Vec{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return out
}

func (g *voxelGrid) isLocalMax26(dist []int, x, y, z, d int) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nx, ny, nz := x+dx, y+dy, z+dz
				if !g.inBounds(nx, ny, nz) {
					continue
				}
				if dist[g.index(nx, ny, nz)] >= d {
					return false
				}
			}
		}
	}
	return true
}

//-----------------------------------------------------------------------------

// rtreePoint wraps a medial-axis point for indexing in an rtreego.Tree.
type rtreePoint struct {
	id  int
	pos v3.Vec
}

func (p *rtreePoint) Bounds() rtreego.Rect {
	r, _ := rtreego.NewRect(
		rtreego.Point{p.pos.X, p.pos.Y, p.pos.Z},
		[]float64{1e-9, 1e-9, 1e-9},
	)
	return r
}

func newMedialTree(pts []v3.Vec) (*rtreego.Rtree, []*rtreePoint) {
	tree := rtreego.NewTree(3, rtreeMinChildren, rtreeMaxChildren)
	objs := make([]*rtreePoint, len(pts))
	for i, p := range pts {
		obj := &rtreePoint{id: i, pos: p}
		objs[i] = obj
		tree.Insert(obj)
	}
	return tree, objs
}

// neighborsWithin returns how many of pts (indexed via tree) lie within
// radius of center, excluding center itself.
func neighborsWithin(tree *rtreego.Rtree, center v3.Vec, radius float64, excludeID int) int {
	lo := []float64{center.X - radius, center.Y - radius, center.Z - radius}
	lengths := []float64{2 * radius, 2 * radius, 2 * radius}
	bb, err := rtreego.NewRect(rtreego.Point(lo), lengths)
	if err != nil {
		return 0
	}
	hits := tree.SearchIntersect(bb)
	count := 0
	for _, h := range hits {
		rp := h.(*rtreePoint)
		if rp.id == excludeID {
			continue
		}
		if rp.pos.Sub(center).Length() <= radius {
			count++
		}
	}
	return count
}

// meanNearestNeighborSpacing estimates s, the typical spacing between
// medial-axis points, over up to skeletonSpacingSamples points.
func meanNearestNeighborSpacing(pts []v3.Vec) float64 {
	n := len(pts)
	sampleN := n
	if sampleN > skeletonSpacingSamples {
		sampleN = skeletonSpacingSamples
	}
	stride := n / sampleN
	if stride < 1 {
		stride = 1
	}

	var total float64
	count := 0
	for i := 0; i < n; i += stride {
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := pts[i].Sub(pts[j]).Length()
			if d < best {
				best = d
			}
		}
		if !math.IsInf(best, 1) {
			total += best
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// orderMedialPath picks a starting endpoint and greedily walks the
// nearest unvisited medial point until all are consumed.
func orderMedialPath(pts []v3.Vec) ([]v3.Vec, error) {
	if len(pts) < 2 {
		return nil, errors.New("fewer than 2 medial points")
	}

	s := meanNearestNeighborSpacing(pts)
	if s <= 0 {
		return nil, errors.New("degenerate medial-point spacing")
	}

	tree, objs := newMedialTree(pts)

	var endpoints []int
	for i, p := range pts {
		if neighborsWithin(tree, p, 2*s, i) <= 1 {
			endpoints = append(endpoints, i)
		}
	}

	var start int
	if len(endpoints) >= 2 {
		start = endpoints[0]
	} else {
		start = farthestPairStart(pts)
	}

	ordered := make([]v3.Vec, 0, len(pts))

	current := objs[start]
	ordered = append(ordered, current.pos)
	tree.Delete(current)

	for len(ordered) < len(pts) {
		nearest := tree.NearestNeighbor(rtreego.Point{current.pos.X, current.pos.Y, current.pos.Z})
		if nearest == nil {
			break
		}
		rp := nearest.(*rtreePoint)
		ordered = append(ordered, rp.pos)
		tree.Delete(rp)
		current = rp
	}

	return ordered, nil
}

// farthestPairStart returns the index of one of the two farthest-apart
// medial points, used when fewer than two natural endpoints exist. Either
// endpoint of the pair is an equally valid path start.
func farthestPairStart(pts []v3.Vec) int {
	bestI := 0
	bestD := -1.0
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := pts[i].Sub(pts[j]).Length()
			if d > bestD {
				bestD, bestI = d, i
			}
		}
	}
	return bestI
}

// pathSmoothness is 1 minus the normalized sum of turning angles along
// the ordered path.
func pathSmoothness(p []v3.Vec) float64 {
	if len(p) < 3 {
		return 0.1
	}
	var turningSum float64
	for i := 1; i < len(p)-1; i++ {
		a := p[i].Sub(p[i-1]).Normalize()
		b := p[i+1].Sub(p[i]).Normalize()
		cos := clampF(a.Dot(b), -1, 1)
		turningSum += math.Acos(cos)
	}
	smoothness := 1 - turningSum/(float64(len(p)-2)*math.Pi)
	if smoothness < 0.1 {
		smoothness = 0.1
	}
	return smoothness
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

//-----------------------------------------------------------------------------
