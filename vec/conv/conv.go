//-----------------------------------------------------------------------------
/*

Conversions between float and integer 3D vectors

*/
//-----------------------------------------------------------------------------

package conv

import (
	v3 "github.com/cadmetrics/tubeanalyzer/vec/v3"
	"github.com/cadmetrics/tubeanalyzer/vec/v3i"
)

// V3ToV3i truncates a float vector to an integer vector.
func V3ToV3i(a v3.Vec) v3i.Vec {
	return v3i.Vec{X: int(a.X), Y: int(a.Y), Z: int(a.Z)}
}

// V3iToV3 widens an integer vector to a float vector.
func V3iToV3(a v3i.Vec) v3.Vec {
	return v3.Vec{X: float64(a.X), Y: float64(a.Y), Z: float64(a.Z)}
}

//-----------------------------------------------------------------------------
