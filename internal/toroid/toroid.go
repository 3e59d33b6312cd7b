// Package toroid sizes physical air-core toroidal inductors. Given a wire
// diameter and a target inductance it solves for the dimensionless winding
// parameter of a D-shaped and a circular cross-section core using empirical
// magnetics fits, then derives the full winding geometry: radii, turn count,
// wire length, and DC resistance.
package toroid

import (
	"fmt"
	"math"

	"github.com/coilworks/coil-designer/pkg/constants"
	"go.uber.org/zap"
)

// circularShapeFactor and circularLinearFactor are the empirical constants
// of the winding-parameter equation for a circular cross-section core.
const (
	circularShapeFactor  = 0.2722
	circularLinearFactor = 0.25
)

// circularTurnsFactor relates the turn count to the solved winding
// parameter for the circular core.
const circularTurnsFactor = 0.8165

// Spec describes one sizing request. Zero-valued optional fields are
// replaced by defaults in Optimize.
type Spec struct {
	// WireDiameter is the conductor bundle diameter in meters.
	WireDiameter float64
	// TargetInductance is the total inductance to realize, in henries.
	TargetInductance float64
	// Layers is the number of winding layers (default 2).
	Layers int
	// CoreMu is the relative permeability of the core (default 1, air).
	CoreMu float64
	// Alpha is the outer-to-inner diameter ratio, one of 2..5 (default 2).
	Alpha int
	// FillFactor is the conductor fraction of the bundle cross-section,
	// in (0, 1] (default 1, solid wire).
	FillFactor float64
	// Resistivity is the conductor resistivity in ohm-meters
	// (default annealed copper).
	Resistivity float64
}

// DShapedGeometry is the solved winding on a D-shaped cross-section core.
type DShapedGeometry struct {
	InnerDiameter float64
	OuterDiameter float64
	Turns         int
	Layers        int
	WireLength    float64
	Resistance    float64
	FlatHeight    float64
	MaxHalfHeight float64
	PeakRadius    float64
}

// CircularGeometry is the solved winding on a circular cross-section core.
type CircularGeometry struct {
	InnerDiameter float64
	OuterDiameter float64
	Turns         int
	Layers        int
	WireLength    float64
	Resistance    float64
	CoreRadius    float64
	CenterRadius  float64
}

// GeneralParameters echoes the solved inputs for traceability.
type GeneralParameters struct {
	LayerInductance  float64
	WireDiameter     float64
	TargetInductance float64
}

// CombinedResult aggregates both candidate geometries and the parameters
// they were solved for. It is fully owned by the caller.
type CombinedResult struct {
	DShaped    DShapedGeometry
	Circular   CircularGeometry
	Parameters GeneralParameters
}

func (s *Spec) applyDefaults() {
	if s.Layers == 0 {
		s.Layers = constants.DefaultLayers
	}
	if s.CoreMu == 0 {
		s.CoreMu = constants.DefaultCoreMu
	}
	if s.Alpha == 0 {
		s.Alpha = 2
	}
	if s.FillFactor == 0 {
		s.FillFactor = constants.DefaultFillFactor
	}
	if s.Resistivity == 0 {
		s.Resistivity = constants.CopperResistivity
	}
}

func (s Spec) validate() error {
	if s.WireDiameter <= 0 {
		return fmt.Errorf("%w: wire diameter must be positive, got %g", ErrInvalidArgument, s.WireDiameter)
	}
	if s.TargetInductance <= 0 {
		return fmt.Errorf("%w: target inductance must be positive, got %g", ErrInvalidArgument, s.TargetInductance)
	}
	if s.Layers < 1 {
		return fmt.Errorf("%w: layers must be at least 1, got %d", ErrInvalidArgument, s.Layers)
	}
	if s.CoreMu <= 0 {
		return fmt.Errorf("%w: core permeability must be positive, got %g", ErrInvalidArgument, s.CoreMu)
	}
	if s.FillFactor <= 0 || s.FillFactor > 1 {
		return fmt.Errorf("%w: fill factor must be in (0, 1], got %g", ErrInvalidArgument, s.FillFactor)
	}
	if _, err := coefficientsFor(s.Alpha); err != nil {
		return err
	}
	return nil
}

// Optimize solves both core shapes for the given spec and returns the
// combined geometry. The computation is pure; the logger only receives
// diagnostics.
func Optimize(logger *zap.Logger, spec Spec) (*CombinedResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	spec.applyDefaults()
	if err := spec.validate(); err != nil {
		return nil, err
	}

	mu := constants.Mu0 * spec.CoreMu
	d := spec.WireDiameter

	// Reference inductance of one turn per unit length of wire.
	l0 := mu * d / (2 * math.Pi)

	// Identical series-aiding layers scale as (turns*layers)^2, so one
	// structurally identical layer is solved for target/layers^2.
	layers := float64(spec.Layers)
	layerInductance := spec.TargetInductance / (layers * layers)
	lPerL0 := layerInductance / l0

	dShaped, err := solveDShaped(logger, spec, lPerL0)
	if err != nil {
		return nil, fmt.Errorf("d-shaped core: %w", err)
	}

	circular, err := solveCircular(logger, spec, lPerL0)
	if err != nil {
		return nil, fmt.Errorf("circular core: %w", err)
	}

	result := &CombinedResult{
		DShaped:  *dShaped,
		Circular: *circular,
		Parameters: GeneralParameters{
			LayerInductance:  layerInductance,
			WireDiameter:     spec.WireDiameter,
			TargetInductance: spec.TargetInductance,
		},
	}

	if estimate, err := EstimateDCoreInductance(result.DShaped, spec.Alpha, spec.CoreMu); err == nil {
		logger.Debug("d-core inductance cross-check",
			zap.String("op", "toroid.Optimize"),
			zap.Float64("target", spec.TargetInductance),
			zap.Float64("estimate", estimate),
		)
	}

	return result, nil
}

func solveDShaped(logger *zap.Logger, spec Spec, lPerL0 float64) (*DShapedGeometry, error) {
	c, err := coefficientsFor(spec.Alpha)
	if err != nil {
		return nil, err
	}

	shapeTerm := math.Sqrt(2*math.Pi) * c.S / math.Pow(c.P, 1.5)
	k, err := solveK(func(k float64) float64 {
		return shapeTerm*math.Pow(k, 1.5) + 0.25*k - lPerL0
	}, constants.KSearchUpperBound)
	if err != nil {
		return nil, err
	}

	d := spec.WireDiameter
	layerLength := k * d
	turnsPerLayer := math.Sqrt(2 * math.Pi * k / c.P)

	// Bore radius at which the wound turns just touch along the inner
	// circumference.
	b := d/2 + turnsPerLayer*d/(2*math.Pi)

	innerDiameter := 2 * b
	if spec.Layers > 1 {
		packed, err := PackedInnerDiameters(spec.Layers, innerDiameter, d)
		if err != nil {
			return nil, err
		}
		innerDiameter = packed[len(packed)-1]
	}

	totalLength := layerLength * float64(spec.Layers)
	resistance, err := WireResistance(logger, totalLength, d, ResistanceParams{
		Resistivity:  spec.Resistivity,
		FillFactor:   spec.FillFactor,
		AssumeMeters: true,
	})
	if err != nil {
		return nil, err
	}

	return &DShapedGeometry{
		InnerDiameter: innerDiameter,
		OuterDiameter: 2 * float64(spec.Alpha) * b,
		Turns:         int(math.Round(turnsPerLayer * float64(spec.Layers))),
		Layers:        spec.Layers,
		WireLength:    totalLength,
		Resistance:    resistance,
		FlatHeight:    b * c.E,
		MaxHalfHeight: b * c.H,
		PeakRadius:    b * c.T,
	}, nil
}

func solveCircular(logger *zap.Logger, spec Spec, lPerL0 float64) (*CircularGeometry, error) {
	k, err := solveK(func(k float64) float64 {
		return circularShapeFactor*math.Pow(k, 1.5) + circularLinearFactor*k - lPerL0
	}, constants.KSearchUpperBound)
	if err != nil {
		return nil, err
	}

	d := spec.WireDiameter
	turns := circularTurnsFactor * math.Sqrt(k)
	wireLength := k * d
	if turns < 1 {
		return nil, fmt.Errorf("%w: solved winding has fewer than one turn", ErrGeometryInfeasible)
	}

	// Minor and major radii come from the per-layer turn count and wire
	// length; the layer scaling below intentionally does not feed back
	// into them.
	coreRadius := wireLength / (2 * math.Pi * turns)
	centerRadius := d/(2*math.Sin(math.Pi/turns)) + coreRadius

	turns *= float64(spec.Layers)
	wireLength *= float64(spec.Layers)

	resistance, err := WireResistance(logger, wireLength, d, ResistanceParams{
		Resistivity:  spec.Resistivity,
		FillFactor:   spec.FillFactor,
		AssumeMeters: true,
	})
	if err != nil {
		return nil, err
	}

	return &CircularGeometry{
		InnerDiameter: 2 * (centerRadius - coreRadius),
		OuterDiameter: 2 * (centerRadius + coreRadius),
		Turns:         int(math.Round(turns)),
		Layers:        spec.Layers,
		WireLength:    wireLength,
		Resistance:    resistance,
		CoreRadius:    coreRadius,
		CenterRadius:  centerRadius,
	}, nil
}

// EstimateDCoreInductance returns an approximate inductance for a solved
// D-shaped geometry from its turn count and bore radius. It is a physical
// cross-check on the empirical solve, useful for diagnostics; it is never
// authoritative.
func EstimateDCoreInductance(g DShapedGeometry, alpha int, coreMu float64) (float64, error) {
	c, err := coefficientsFor(alpha)
	if err != nil {
		return 0, err
	}
	if g.InnerDiameter <= 0 || g.Turns < 1 {
		return 0, fmt.Errorf("%w: geometry has no solved winding", ErrInvalidArgument)
	}

	mu := constants.Mu0 * coreMu
	n := float64(g.Turns)
	return mu * n * n * c.S * (g.InnerDiameter / 2) / (2 * math.Pi), nil
}
