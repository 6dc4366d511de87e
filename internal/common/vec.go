package common

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the length below which a vector is treated as zero.
// Normalizing or dividing by anything shorter is numerically meaningless.
const Epsilon = 1e-9

// Distance calculates the Euclidean distance between two points.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Lerp linearly interpolates from a toward b by factor t.
// t = 0 returns a, t = 1 returns b.
func Lerp(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// Unit returns the unit vector along v, or the zero vector when v is
// shorter than Epsilon.
func Unit(v r2.Vec) r2.Vec {
	n := r2.Norm(v)
	if n < Epsilon {
		return r2.Vec{}
	}
	return r2.Scale(1/n, v)
}

// IsFinite reports whether both components of v are finite numbers.
func IsFinite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
