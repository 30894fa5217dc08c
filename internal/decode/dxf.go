//-----------------------------------------------------------------------------
/*

DXF Decoding

Synthesizes a line-strip "mesh" from LINE and POLYLINE/LWPOLYLINE entities
in an ASCII DXF file. Arcs and circles are tessellated into short line
segments when present; only these entity types are synthesized, and any
other entity type is skipped without failing the file.

*/
//-----------------------------------------------------------------------------

package decode

import (
	"bytes"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/cadmetrics/tubeanalyzer/internal/analyzeerr"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
)

// arcTessellationSegments is the number of line segments an ARC or CIRCLE
// entity is flattened to.
const arcTessellationSegments = 32

// decodeDXF parses DXF ASCII content and concatenates the points of every
// supported entity, in drawing order, into one line-strip mesh, returned
// as a single-mesh MeshSet (the analyzer treats a DXF file as a single body).
func decodeDXF(data []byte) (*meshtypes.MeshSet, *meshtypes.MetadataBag, error) {
	drawing, err := dxf.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &analyzeerr.DecodeFailure{Msg: err.Error()}
	}

	var segments []v3.Vec
	for _, e := range drawing.Entities() {
		switch ent := e.(type) {
		case *entity.Line:
			segments = append(segments,
				v3.Vec{X: ent.Start[0], Y: ent.Start[1], Z: ent.Start[2]},
				v3.Vec{X: ent.End[0], Y: ent.End[1], Z: ent.End[2]},
			)
		case *entity.Lwpolyline:
			for _, p := range ent.Vertices {
				segments = append(segments, v3.Vec{X: p[0], Y: p[1], Z: 0})
			}
		case *entity.Polyline:
			for _, v := range ent.Vertices {
				segments = append(segments, v3.Vec{X: v.Coord[0], Y: v.Coord[1], Z: v.Coord[2]})
			}
		case *entity.Circle:
			segments = append(segments, tessellateCircle(ent.Center, ent.Radius)...)
		case *entity.Arc:
			segments = append(segments, tessellateArc(ent.Center, ent.Radius, ent.Angle[0], ent.Angle[1])...)
		default:
			// Unsupported entity type: ignore without failing the file.
		}
	}

	if len(segments) == 0 {
		return nil, nil, &analyzeerr.DecodeFailure{Msg: "no LINE/POLYLINE/ARC/CIRCLE entities found"}
	}

	mesh := &meshtypes.Mesh{Position: segments, LineStrip: true}
	return &meshtypes.MeshSet{Meshes: []*meshtypes.Mesh{mesh}}, &meshtypes.MetadataBag{}, nil
}

func tessellateCircle(center [3]float64, radius float64) []v3.Vec {
	return tessellateArc(center, radius, 0, 360)
}

func tessellateArc(center [3]float64, radius, startDeg, endDeg float64) []v3.Vec {
	if endDeg < startDeg {
		endDeg += 360
	}
	pts := make([]v3.Vec, 0, arcTessellationSegments+1)
	for i := 0; i <= arcTessellationSegments; i++ {
		t := startDeg + (endDeg-startDeg)*float64(i)/float64(arcTessellationSegments)
		rad := t * math.Pi / 180
		pts = append(pts, v3.Vec{
			X: center[0] + radius*math.Cos(rad),
			Y: center[1] + radius*math.Sin(rad),
			Z: center[2],
		})
	}
	return pts
}

//-----------------------------------------------------------------------------
