//-----------------------------------------------------------------------------
/*

3D Vectors

*/
//-----------------------------------------------------------------------------

package v3

import "math"

//-----------------------------------------------------------------------------

// Vec is a 3D float64 vector.
type Vec struct {
	X, Y, Z float64
}

//-----------------------------------------------------------------------------

// Add returns the vector sum v + a.
func (v Vec) Add(a Vec) Vec {
	return Vec{v.X + a.X, v.Y + a.Y, v.Z + a.Z}
}

// Sub returns the vector difference v - a.
func (v Vec) Sub(a Vec) Vec {
	return Vec{v.X - a.X, v.Y - a.Y, v.Z - a.Z}
}

// MulScalar returns v scaled by k.
func (v Vec) MulScalar(k float64) Vec {
	return Vec{v.X * k, v.Y * k, v.Z * k}
}

// DivScalar returns v divided by k.
func (v Vec) DivScalar(k float64) Vec {
	return Vec{v.X / k, v.Y / k, v.Z / k}
}

// AddScalar returns v with k added to each component.
func (v Vec) AddScalar(k float64) Vec {
	return Vec{v.X + k, v.Y + k, v.Z + k}
}

// Div returns the per-component division of v by a.
func (v Vec) Div(a Vec) Vec {
	return Vec{v.X / a.X, v.Y / a.Y, v.Z / a.Z}
}

// Mul returns the per-component product of v and a.
func (v Vec) Mul(a Vec) Vec {
	return Vec{v.X * a.X, v.Y * a.Y, v.Z * a.Z}
}

// Dot returns the dot product of v and a.
func (v Vec) Dot(a Vec) float64 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z
}

// Cross returns the cross product of v and a.
func (v Vec) Cross(a Vec) Vec {
	return Vec{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Ceil rounds each component up to the nearest integer value.
func (v Vec) Ceil() Vec {
	return Vec{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z)}
}

// Floor rounds each component down to the nearest integer value.
func (v Vec) Floor() Vec {
	return Vec{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// Abs returns the per-component absolute value of v.
func (v Vec) Abs() Vec {
	return Vec{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Min returns the per-component minimum of v and a.
func (v Vec) Min(a Vec) Vec {
	return Vec{math.Min(v.X, a.X), math.Min(v.Y, a.Y), math.Min(v.Z, a.Z)}
}

// Max returns the per-component maximum of v and a.
func (v Vec) Max(a Vec) Vec {
	return Vec{math.Max(v.X, a.X), math.Max(v.Y, a.Y), math.Max(v.Z, a.Z)}
}

// MaxComponent returns the largest of the three components.
func (v Vec) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// MinComponent returns the smallest of the three components.
func (v Vec) MinComponent() float64 {
	return math.Min(v.X, math.Min(v.Y, v.Z))
}

// Equals reports whether v and a are within tolerance of each other.
func (v Vec) Equals(a Vec, tolerance float64) bool {
	return v.Sub(a).Length() <= tolerance
}

// IsFinite reports whether all components of v are finite (not NaN or +-Inf).
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

//-----------------------------------------------------------------------------
