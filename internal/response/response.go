// Package response evaluates the frequency response of a synthesized
// matching network driving a resonant coil: input impedance and coil
// current per source volt across a frequency sweep.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/coilworks/coil-designer/internal/network"
	"github.com/coilworks/coil-designer/pkg/constants"
)

// ErrInvalidArgument indicates an unusable sweep specification.
var ErrInvalidArgument = errors.New("invalid argument")

// SweepSpec describes the frequency points to evaluate.
type SweepSpec struct {
	// StartFreq and StopFreq bound the sweep in hertz.
	StartFreq float64
	StopFreq  float64
	// Points is the number of samples (default 200).
	Points int
	// Spacing is "lin", "dec", or "oct" (default "lin").
	Spacing string
}

// Point is the response at one frequency.
type Point struct {
	Frequency float64
	// Zin is the impedance seen by the source.
	Zin complex128
	// Transfer is the coil current per source volt (siemens).
	Transfer complex128
}

// Sweep is an evaluated frequency response.
type Sweep struct {
	Points []Point
}

// Frequencies expands a sweep spec into its sample frequencies.
func Frequencies(spec SweepSpec) ([]float64, error) {
	if spec.StartFreq <= 0 || spec.StopFreq <= spec.StartFreq {
		return nil, fmt.Errorf("%w: sweep bounds [%g, %g] are not an increasing positive interval",
			ErrInvalidArgument, spec.StartFreq, spec.StopFreq)
	}
	points := spec.Points
	if points == 0 {
		points = constants.DefaultSweepPoints
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 points, got %d", ErrInvalidArgument, points)
	}

	spacing := spec.Spacing
	if spacing == "" {
		spacing = constants.SweepSpacingLinear
	}

	freqs := make([]float64, points)
	switch spacing {
	case constants.SweepSpacingLinear:
		step := (spec.StopFreq - spec.StartFreq) / float64(points-1)
		for i := range freqs {
			freqs[i] = spec.StartFreq + float64(i)*step
		}
	case constants.SweepSpacingDecade:
		logStart := math.Log10(spec.StartFreq)
		logStop := math.Log10(spec.StopFreq)
		step := (logStop - logStart) / float64(points-1)
		for i := range freqs {
			freqs[i] = math.Pow(10, logStart+float64(i)*step)
		}
	case constants.SweepSpacingOctave:
		logStart := math.Log2(spec.StartFreq)
		logStop := math.Log2(spec.StopFreq)
		step := (logStop - logStart) / float64(points-1)
		for i := range freqs {
			freqs[i] = math.Pow(2, logStart+float64(i)*step)
		}
	default:
		return nil, fmt.Errorf("%w: unknown sweep spacing %q", ErrInvalidArgument, spacing)
	}
	// Guard against log/pow rounding at the edges.
	freqs[0] = spec.StartFreq
	freqs[points-1] = spec.StopFreq

	return freqs, nil
}

// At evaluates the network at a single frequency.
func At(net *network.Network, coil network.Coil, freq float64) Point {
	omega := 2 * math.Pi * freq

	// Series branch: match inductor, resonant capacitor, then the coil.
	branch := complex(coil.Resistance, omega*(coil.Inductance+net.MatchInductor)-1/(omega*net.ResonantCapacitor))
	shunt := complex(0, -1/(omega*net.MatchCapacitor))

	return Point{
		Frequency: freq,
		Zin:       shunt * branch / (shunt + branch),
		Transfer:  1 / branch,
	}
}

// Simulate evaluates the network across the sweep.
func Simulate(net *network.Network, coil network.Coil, spec SweepSpec) (*Sweep, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: network cannot be nil", ErrInvalidArgument)
	}

	freqs, err := Frequencies(spec)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(freqs))
	for i, f := range freqs {
		points[i] = At(net, coil, f)
	}
	return &Sweep{Points: points}, nil
}

// MagnitudeDB converts a transfer value to decibels.
func MagnitudeDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}

// Peak returns the point with the largest transfer magnitude.
func (s *Sweep) Peak() Point {
	best := s.Points[0]
	for _, p := range s.Points[1:] {
		if cmplx.Abs(p.Transfer) > cmplx.Abs(best.Transfer) {
			best = p
		}
	}
	return best
}
