//-----------------------------------------------------------------------------
/*

3D Integer Vectors

*/
//-----------------------------------------------------------------------------

package v3i

//-----------------------------------------------------------------------------

// Vec is a 3D integer vector, used for voxel grid dimensions and indices.
type Vec struct {
	X, Y, Z int
}

// Add returns the vector sum v + a.
func (v Vec) Add(a Vec) Vec {
	return Vec{v.X + a.X, v.Y + a.Y, v.Z + a.Z}
}

// Volume returns the product of the three components.
func (v Vec) Volume() int {
	return v.X * v.Y * v.Z
}

//-----------------------------------------------------------------------------
