package interp

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// ScalingMode selects how interior derivative magnitudes are derived from the
// arc lengths of the two adjacent elements.
type ScalingMode int

const (
	// ArithmeticMean uses the mean of the adjacent arc lengths.
	ArithmeticMean = ScalingMode(0)
	// HarmonicMean uses the harmonic mean of the adjacent arc lengths.
	HarmonicMean = ScalingMode(1)
)

// SmoothParams controls SmoothCubicHermiteDerivativesLine.
type SmoothParams struct {
	FixStartDerivative bool
	FixEndDerivative   bool
	Scaling            ScalingMode
	MaxIterations      int
	Tolerance          float64 // relative to the largest derivative magnitude
}

// SmoothDefaults are the default smoothing parameters.
var SmoothDefaults = SmoothParams{
	Scaling:       ArithmeticMean,
	MaxIterations: 100,
	Tolerance:     1e-6,
}

// SmoothCubicHermiteDerivativesLine returns derivatives for the open line through
// points x that are consistent with the arc lengths of the Hermite elements between
// them, starting from the estimates d1. If params is nil, SmoothDefaults are used.
func SmoothCubicHermiteDerivativesLine(x, d1 []r3.Vec, params *SmoothParams) ([]r3.Vec, error) {
	if params == nil {
		params = &SmoothDefaults
	}
	n := len(x)
	if len(d1) != n {
		return nil, &SizeError{Op: "SmoothCubicHermiteDerivativesLine", Values: n, Derivatives: len(d1)}
	}
	if n < 2 {
		return nil, &SizeError{Op: "SmoothCubicHermiteDerivativesLine: too few points", Values: n, Derivatives: len(d1)}
	}
	md1 := make([]r3.Vec, n)
	copy(md1, d1)
	if n == 2 && !params.FixStartDerivative && !params.FixEndDerivative {
		delta := r3.Sub(x[1], x[0])
		return []r3.Vec{delta, delta}, nil
	}

	last := make([]r3.Vec, n)
	arcLengths := make([]float64, n-1)
	for iter := 0; iter < params.MaxIterations; iter++ {
		copy(last, md1)
		for e := range arcLengths {
			arcLengths[e] = CubicHermiteArcLength(x[e], md1[e], x[e+1], md1[e+1])
		}
		if !params.FixStartDerivative {
			md1[0] = LagrangeHermiteDerivative(x[0], x[1], last[1], 0)
		}
		for i := 1; i < n-1; i++ {
			lm, lp := arcLengths[i-1], arcLengths[i]
			dirm := r3.Sub(x[i], x[i-1])
			dirp := r3.Sub(x[i+1], x[i])
			// each chord is weighted by the fraction towards the other end
			sum := lm + lp
			if sum == 0 {
				md1[i] = r3.Vec{}
				continue
			}
			dir := r3.Add(r3.Scale(lp/sum, dirm), r3.Scale(lm/sum, dirp))
			var mag float64
			if params.Scaling == HarmonicMean {
				mag = 2 / (1/lm + 1/lp)
			} else {
				mag = 0.5 * (lm + lp)
			}
			md1[i] = SetMagnitude(dir, mag)
		}
		if !params.FixEndDerivative {
			md1[n-1] = HermiteLagrangeDerivative(x[n-2], last[n-2], x[n-1], 1)
		}
		if converged(md1, last, params.Tolerance) {
			break
		}
	}
	return md1, nil
}

func converged(cur, prev []r3.Vec, tol float64) bool {
	var scale float64
	for _, d := range cur {
		if m := r3.Norm(d); m > scale {
			scale = m
		}
	}
	limit := tol * scale
	for i := range cur {
		if r3.Norm(r3.Sub(cur[i], prev[i])) > limit {
			return false
		}
	}
	return true
}
