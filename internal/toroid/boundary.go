package toroid

import (
	"fmt"
	"math"
)

// BoundaryPoint is one sample of the D-shaped core's cross-section
// boundary: radial position and axial height, both in meters.
type BoundaryPoint struct {
	R float64
	Z float64
}

// BoundaryCurve is the closed cross-section outline of a D-shaped core,
// ordered along the curve. The upper half runs from the inner radius to
// the outer radius, then mirrors back below the z=0 axis.
type BoundaryCurve []BoundaryPoint

// BoundaryOptions tunes the boundary sampling. Zero-valued fields take
// defaults.
type BoundaryOptions struct {
	// StepSize is the radial integration step (default (r2-r1)/2000).
	StepSize float64
	// Upsample is the number of interpolated points inserted between the
	// first two samples to smooth the near-singular start (default 8).
	Upsample int
	// TargetPoints, when positive, downsamples the closed curve to about
	// this many points for export.
	TargetPoints int
}

// SampleBoundary traces the D-shaped cross-section between innerRadius and
// outerRadius by integrating dZ/dr = ln(sqrt(r1*r2)/r) / sqrt(ln(r/r1)*ln(r2/r))
// with an explicit Euler scheme. The derivative is singular at both
// endpoints, so integration starts one step inside r1 and the boundary
// conditions z(r1)=0 and z(r2)=0 are enforced afterwards by shifting and
// patching.
func SampleBoundary(innerRadius, outerRadius float64, opts BoundaryOptions) (BoundaryCurve, error) {
	if innerRadius <= 0 {
		return nil, fmt.Errorf("%w: inner radius must be positive, got %g", ErrInvalidArgument, innerRadius)
	}
	if outerRadius <= innerRadius {
		return nil, fmt.Errorf("%w: outer radius %g must exceed inner radius %g", ErrInvalidArgument, outerRadius, innerRadius)
	}

	step := opts.StepSize
	if step == 0 {
		step = (outerRadius - innerRadius) / 2000
	}
	if step <= 0 || step >= (outerRadius-innerRadius)/4 {
		return nil, fmt.Errorf("%w: step size %g does not resolve the interval", ErrInvalidArgument, step)
	}
	upsample := opts.Upsample
	if upsample == 0 {
		upsample = 8
	}

	slope := func(r float64) float64 {
		return math.Log(math.Sqrt(innerRadius*outerRadius)/r) /
			math.Sqrt(math.Log(r/innerRadius)*math.Log(outerRadius/r))
	}

	var half BoundaryCurve
	z := 0.0
	for i := 1; ; i++ {
		r := innerRadius + float64(i)*step
		if r >= outerRadius {
			break
		}
		half = append(half, BoundaryPoint{R: r, Z: z})
		z += slope(r) * step
	}
	half = append(half, BoundaryPoint{R: outerRadius, Z: z})

	// Enforce z(r2)=0 by shifting the whole curve.
	shift := half[len(half)-1].Z
	for i := range half {
		half[i].Z -= shift
	}
	// The true boundary condition at r1, masked by the one-step offset.
	half[0].Z = 0

	// Linear interpolation between the first two samples smooths the
	// steep near-singular start.
	if upsample > 0 && len(half) > 1 {
		first, second := half[0], half[1]
		smoothed := make(BoundaryCurve, 0, len(half)+upsample)
		smoothed = append(smoothed, first)
		for i := 1; i <= upsample; i++ {
			t := float64(i) / float64(upsample+1)
			smoothed = append(smoothed, BoundaryPoint{
				R: first.R + t*(second.R-first.R),
				Z: first.Z + t*(second.Z-first.Z),
			})
		}
		smoothed = append(smoothed, half[1:]...)
		half = smoothed
	}

	// Mirror about z=0 to close the curve, skipping the shared endpoints.
	curve := make(BoundaryCurve, 0, 2*len(half))
	curve = append(curve, half...)
	for i := len(half) - 2; i >= 1; i-- {
		curve = append(curve, BoundaryPoint{R: half[i].R, Z: -half[i].Z})
	}

	if opts.TargetPoints > 0 && len(curve) > opts.TargetPoints {
		curve = downsample(curve, opts.TargetPoints)
	}

	return curve, nil
}

// downsample keeps roughly n evenly spaced points, always retaining the
// first and last.
func downsample(curve BoundaryCurve, n int) BoundaryCurve {
	if n < 2 {
		n = 2
	}
	out := make(BoundaryCurve, 0, n)
	stride := float64(len(curve)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, curve[int(math.Round(float64(i)*stride))])
	}
	return out
}
