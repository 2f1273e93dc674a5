package interp

import (
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

// quadraturePoints is the number of Gauss-Legendre points used per element.
const quadraturePoints = 8

// CubicHermiteArcLength returns the arc length of the Hermite curve over xi in [0,1].
func CubicHermiteArcLength(v1, d1, v2, d2 r3.Vec) float64 {
	return CubicHermiteArcLengthTo(v1, d1, v2, d2, 1)
}

// CubicHermiteArcLengthTo returns the arc length of the Hermite curve over [0,xi].
func CubicHermiteArcLengthTo(v1, d1, v2, d2 r3.Vec, xi float64) float64 {
	if xi == 0 {
		return 0
	}
	speed := func(t float64) float64 {
		return r3.Norm(CubicHermiteDerivativeVec(v1, d1, v2, d2, t))
	}
	return quad.Fixed(speed, 0, xi, quadraturePoints, quad.Legendre{}, 0)
}

// CubicHermiteCurvature returns the unsigned curvature |r' x r"| / |r'|^3
// of the Hermite curve at xi. A stationary point has zero curvature.
func CubicHermiteCurvature(v1, d1, v2, d2 r3.Vec, xi float64) float64 {
	d := CubicHermiteDerivativeVec(v1, d1, v2, d2, xi)
	mag := r3.Norm(d)
	if mag == 0 {
		return 0
	}
	dd := CubicHermiteSecondDerivativeVec(v1, d1, v2, d2, xi)
	return r3.Norm(r3.Cross(d, dd)) / (mag * mag * mag)
}

// LoopCurvatures returns the curvature at every node of the closed Hermite loop x, d1.
// The node value is the mean of the curvature at the end of the element before it and
// at the start of the element after it. When transit is given, a node bounding a
// transition element takes the curvature of its other element only.
func LoopCurvatures(x, d1 []r3.Vec, transit []bool) ([]float64, error) {
	n := len(x)
	if len(d1) != n {
		return nil, &SizeError{Op: "LoopCurvatures", Values: n, Derivatives: len(d1)}
	}
	if transit != nil && len(transit) != n {
		return nil, &SizeError{Op: "LoopCurvatures", Values: n, Derivatives: len(transit)}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := mod(i-1, n)
		next := mod(i+1, n)
		km := CubicHermiteCurvature(x[prev], d1[prev], x[i], d1[i], 1)
		kp := CubicHermiteCurvature(x[i], d1[i], x[next], d1[next], 0)
		switch {
		case transit == nil || (!transit[i] && !transit[prev]):
			out[i] = 0.5 * (km + kp)
		case transit[i]:
			out[i] = km
		default:
			out[i] = kp
		}
	}
	return out, nil
}

// SetMagnitude returns v scaled to length mag. The zero vector stays zero.
func SetMagnitude(v r3.Vec, mag float64) r3.Vec {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(mag/n, v)
}

// mod is the non-negative remainder of a modulo n.
func mod(a, n int) int {
	if a >= n {
		return a % n
	} else if a >= 0 {
		return a
	}
	return n - 1 - (-1-a)%n
}
