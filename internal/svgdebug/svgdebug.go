//-----------------------------------------------------------------------------
/*

SVG Debug Export

Renders a top-down (XY) projection of a part's bounding box and extracted
centerline to SVG, for quick visual sanity-checking of a length/bend
estimate without opening a CAD viewer. Supplemental QA tooling, not part
of the numeric output contract.

*/
//-----------------------------------------------------------------------------

package svgdebug

import (
	"io"

	"github.com/ajstarks/svgo"

	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
	margin       = 40
)

// WriteTopDown renders bb and the ordered centerline polyline, projected
// onto the XY plane, to w as an SVG document.
func WriteTopDown(w io.Writer, bb meshtypes.Box3, centerline []v3.Vec) {
	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	defer canvas.End()

	size := bb.Size()
	spanX, spanY := size.X, size.Y
	if spanX < 1e-9 {
		spanX = 1
	}
	if spanY < 1e-9 {
		spanY = 1
	}
	scale := (canvasWidth - 2*margin) / spanX
	if alt := (canvasHeight - 2*margin) / spanY; alt < scale {
		scale = alt
	}

	project := func(p v3.Vec) (int, int) {
		x := margin + int((p.X-bb.Min.X)*scale)
		y := canvasHeight - margin - int((p.Y-bb.Min.Y)*scale)
		return x, y
	}

	minX, minY := project(bb.Min)
	maxX, maxY := project(bb.Max)
	canvas.Rect(minX, maxY, maxX-minX, minY-maxY, "fill:none;stroke:gray;stroke-dasharray:4,3")

	if len(centerline) > 1 {
		xs := make([]int, len(centerline))
		ys := make([]int, len(centerline))
		for i, p := range centerline {
			xs[i], ys[i] = project(p)
		}
		canvas.Polyline(xs, ys, "fill:none;stroke:red;stroke-width:2")
	}
}
