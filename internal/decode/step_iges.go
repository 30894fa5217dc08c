//-----------------------------------------------------------------------------
/*

STEP / IGES Decoding

Both formats delegate to the injected Tessellator; the only work this
file does is convert the tessellator's loosely-typed output into the
MeshSet/MetadataBag shapes the rest of the pipeline expects, and
surface a DecodeFailure when the tessellator reports failure or returns
no meshes or no vertices.

*/
//-----------------------------------------------------------------------------

package decode

import (
	"github.com/cadmetrics/tubeanalyzer/internal/analyzeerr"
	"github.com/cadmetrics/tubeanalyzer/internal/meshtypes"
)

func decodeBRep(data []byte, tess Tessellator) (*meshtypes.MeshSet, *meshtypes.MetadataBag, error) {
	tms, meta, err := tess.Tessellate(data)
	if err != nil {
		return nil, nil, &analyzeerr.DecodeFailure{Msg: err.Error()}
	}
	if len(tms) == 0 {
		return nil, nil, &analyzeerr.DecodeFailure{Msg: "tessellator returned zero meshes"}
	}

	totalVerts := 0
	meshes := make([]*meshtypes.Mesh, 0, len(tms))
	for _, tm := range tms {
		totalVerts += len(tm.Position)
		meshes = append(meshes, &meshtypes.Mesh{
			Position: tm.Position,
			Normal:   tm.Normal,
			Index:    tm.Index,
		})
	}
	if totalVerts == 0 {
		return nil, nil, &analyzeerr.DecodeFailure{Msg: "tessellator returned zero vertices"}
	}

	bag := &meshtypes.MetadataBag{
		Units:      meta.Units,
		LengthUnit: meta.LengthUnit,
	}
	if meta.MetadataUnits != "" {
		bag.Metadata = map[string]string{"units": meta.MetadataUnits}
	}

	return &meshtypes.MeshSet{Meshes: meshes}, bag, nil
}

//-----------------------------------------------------------------------------
