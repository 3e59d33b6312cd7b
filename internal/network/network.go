// Package network synthesizes a matching/filter network for a resonant
// drive coil: a series capacitor that cancels the coil reactance at the
// drive frequency, plus an L-section that lifts the remaining coil
// resistance to the source impedance.
package network

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument indicates a non-physical synthesis input.
var ErrInvalidArgument = errors.New("invalid argument")

// Coil is the electrical model of the drive coil at the operating point.
type Coil struct {
	// Inductance in henries.
	Inductance float64
	// Resistance is the winding ESR in ohms.
	Resistance float64
}

// Params describes one synthesis request.
type Params struct {
	Coil Coil
	// Frequency is the drive frequency in hertz.
	Frequency float64
	// TargetImpedance is the source impedance to present, in ohms. It
	// must exceed the coil resistance (step-up L-section).
	TargetImpedance float64
}

// Network holds the synthesized element values.
type Network struct {
	// Q is the loaded quality factor of the L-section.
	Q float64
	// ResonantCapacitor cancels the coil reactance at the drive
	// frequency, in farads.
	ResonantCapacitor float64
	// MatchInductor is the series L-section element, in henries. It is
	// the inductor the toroid optimizer is asked to realize.
	MatchInductor float64
	// MatchCapacitor is the shunt L-section element on the source side,
	// in farads.
	MatchCapacitor float64
	// Frequency echoes the design frequency in hertz.
	Frequency float64
}

func (p Params) validate() error {
	if p.Coil.Inductance <= 0 {
		return fmt.Errorf("%w: coil inductance must be positive, got %g", ErrInvalidArgument, p.Coil.Inductance)
	}
	if p.Coil.Resistance <= 0 {
		return fmt.Errorf("%w: coil resistance must be positive, got %g", ErrInvalidArgument, p.Coil.Resistance)
	}
	if p.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalidArgument, p.Frequency)
	}
	if p.TargetImpedance <= p.Coil.Resistance {
		return fmt.Errorf("%w: target impedance %g must exceed coil resistance %g",
			ErrInvalidArgument, p.TargetImpedance, p.Coil.Resistance)
	}
	return nil
}

// Synthesize computes the matching network element values for the given
// coil and source impedance.
func Synthesize(p Params) (*Network, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	omega := 2 * math.Pi * p.Frequency

	// Series resonance leaves the bare winding resistance at f0.
	resonantCapacitor := 1 / (omega * omega * p.Coil.Inductance)

	q := math.Sqrt(p.TargetImpedance/p.Coil.Resistance - 1)
	seriesReactance := q * p.Coil.Resistance
	shuntReactance := p.TargetImpedance / q

	return &Network{
		Q:                 q,
		ResonantCapacitor: resonantCapacitor,
		MatchInductor:     seriesReactance / omega,
		MatchCapacitor:    1 / (omega * shuntReactance),
		Frequency:         p.Frequency,
	}, nil
}
