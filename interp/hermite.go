// Package interp implements cubic Hermite interpolation of scalars and 3-D vectors,
// derivative smoothing along Hermite lines and arc length measurement.
package interp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrSizeMismatch is returned when parallel value/derivative sequences differ in length.
var ErrSizeMismatch = errors.New("interp: input size mismatch")

// SizeError describes mismatched input sizes passed to an interpolation routine.
type SizeError struct {
	Op          string
	Values      int
	Derivatives int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("interp: %s: %d values but %d derivatives", e.Op, e.Values, e.Derivatives)
}

// Is reports ErrSizeMismatch as the sentinel for all size errors.
func (e *SizeError) Is(target error) bool { return target == ErrSizeMismatch }

// basis returns the cubic Hermite basis functions at xi.
func basis(xi float64) (f1, f2, f3, f4 float64) {
	xi2 := xi * xi
	xi3 := xi2 * xi
	f1 = 1 - 3*xi2 + 2*xi3
	f2 = xi - 2*xi2 + xi3
	f3 = 3*xi2 - 2*xi3
	f4 = -xi2 + xi3
	return
}

// basisDerivative returns the first derivatives of the Hermite basis at xi.
func basisDerivative(xi float64) (f1, f2, f3, f4 float64) {
	xi2 := xi * xi
	f1 = -6*xi + 6*xi2
	f2 = 1 - 4*xi + 3*xi2
	f3 = 6*xi - 6*xi2
	f4 = -2*xi + 3*xi2
	return
}

// basisSecondDerivative returns the second derivatives of the Hermite basis at xi.
func basisSecondDerivative(xi float64) (f1, f2, f3, f4 float64) {
	f1 = -6 + 12*xi
	f2 = -4 + 6*xi
	f3 = 6 - 12*xi
	f4 = -2 + 6*xi
	return
}

// CubicHermite evaluates the scalar cubic Hermite curve through p0, p1 with
// derivatives d0, d1 at xi. The result is only meaningful for xi in [0,1].
func CubicHermite(p0, d0, p1, d1, xi float64) float64 {
	f1, f2, f3, f4 := basis(xi)
	return f1*p0 + f2*d0 + f3*p1 + f4*d1
}

// CubicHermiteDerivative is the xi derivative of CubicHermite.
func CubicHermiteDerivative(p0, d0, p1, d1, xi float64) float64 {
	f1, f2, f3, f4 := basisDerivative(xi)
	return f1*p0 + f2*d0 + f3*p1 + f4*d1
}

func combine(f1, f2, f3, f4 float64, p0, d0, p1, d1 r3.Vec) r3.Vec {
	return r3.Vec{
		X: f1*p0.X + f2*d0.X + f3*p1.X + f4*d1.X,
		Y: f1*p0.Y + f2*d0.Y + f3*p1.Y + f4*d1.Y,
		Z: f1*p0.Z + f2*d0.Z + f3*p1.Z + f4*d1.Z,
	}
}

// CubicHermiteVec evaluates the vector cubic Hermite curve at xi.
func CubicHermiteVec(p0, d0, p1, d1 r3.Vec, xi float64) r3.Vec {
	f1, f2, f3, f4 := basis(xi)
	return combine(f1, f2, f3, f4, p0, d0, p1, d1)
}

// CubicHermiteDerivativeVec is the xi derivative of CubicHermiteVec.
func CubicHermiteDerivativeVec(p0, d0, p1, d1 r3.Vec, xi float64) r3.Vec {
	f1, f2, f3, f4 := basisDerivative(xi)
	return combine(f1, f2, f3, f4, p0, d0, p1, d1)
}

// CubicHermiteSecondDerivativeVec is the second xi derivative of CubicHermiteVec.
func CubicHermiteSecondDerivativeVec(p0, d0, p1, d1 r3.Vec, xi float64) r3.Vec {
	f1, f2, f3, f4 := basisSecondDerivative(xi)
	return combine(f1, f2, f3, f4, p0, d0, p1, d1)
}

// CubicHermiteComponents interpolates values with any number of components.
// All four inputs must have the same length.
func CubicHermiteComponents(p0, d0, p1, d1 []float64, xi float64) ([]float64, error) {
	n := len(p0)
	for _, c := range [][]float64{d0, p1, d1} {
		if len(c) != n {
			return nil, &SizeError{Op: "CubicHermiteComponents", Values: n, Derivatives: len(c)}
		}
	}
	f1, f2, f3, f4 := basis(xi)
	out := make([]float64, n)
	for i := range out {
		out[i] = f1*p0[i] + f2*d0[i] + f3*p1[i] + f4*d1[i]
	}
	return out, nil
}

// LagrangeHermiteDerivative returns the derivative at xi of the quadratic through
// v1 at 0 and v2 at 1 with derivative d2 at 1.
func LagrangeHermiteDerivative(v1, v2, d2 r3.Vec, xi float64) r3.Vec {
	// q(xi) = v1 + b*xi + c*xi^2
	c := r3.Sub(d2, r3.Sub(v2, v1))
	b := r3.Sub(r3.Scale(2, r3.Sub(v2, v1)), d2)
	return r3.Add(b, r3.Scale(2*xi, c))
}

// HermiteLagrangeDerivative returns the derivative at xi of the quadratic through
// v1 at 0 with derivative d1, and v2 at 1.
func HermiteLagrangeDerivative(v1, d1, v2 r3.Vec, xi float64) r3.Vec {
	c := r3.Sub(r3.Sub(v2, v1), d1)
	return r3.Add(d1, r3.Scale(2*xi, c))
}
