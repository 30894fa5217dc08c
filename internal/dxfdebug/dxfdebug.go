//-----------------------------------------------------------------------------
/*

DXF Debug Export

Writes an ordered centerline polyline back out as a DXF drawing of LINE
entities, so an analyst can overlay the extracted skeleton against the
original CAD file in any DXF viewer. Supplemental QA tooling, not part of
the numeric output contract.

*/
//-----------------------------------------------------------------------------

package dxfdebug

import (
	"github.com/yofu/dxf"

	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

// WriteCenterline renders an ordered polyline as consecutive LINE entities
// and saves the drawing to path.
func WriteCenterline(path string, polyline []v3.Vec) error {
	d := dxf.NewDrawing()
	for i := 1; i < len(polyline); i++ {
		a, b := polyline[i-1], polyline[i]
		d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return d.SaveAs(path)
}
