package toroid

import (
	"fmt"
	"math"

	"github.com/coilworks/coil-designer/pkg/constants"
	"go.uber.org/zap"
)

// millimeterThreshold is the diameter above which a value passed without
// AssumeMeters is treated as millimeters. No practical winding wire is
// thicker than 0.1 m.
const millimeterThreshold = 0.1

// ResistanceParams holds the optional inputs of WireResistance.
// Zero-valued fields take defaults.
type ResistanceParams struct {
	// Resistivity of the conductor in ohm-meters (default annealed copper).
	Resistivity float64
	// FillFactor is the conductor fraction of the bundle cross-section,
	// in (0, 1] (default 1).
	FillFactor float64
	// AssumeMeters disables the legacy millimeter auto-correction. When
	// false, a diameter above 0.1 is rescaled by 1e-3 and a warning is
	// logged.
	AssumeMeters bool
}

// WireResistance returns the DC resistance of a wound conductor of the
// given length and bundle diameter, both in meters.
func WireResistance(logger *zap.Logger, length, diameter float64, params ResistanceParams) (float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if params.Resistivity == 0 {
		params.Resistivity = constants.CopperResistivity
	}
	if params.FillFactor == 0 {
		params.FillFactor = constants.DefaultFillFactor
	}

	if length <= 0 {
		return 0, fmt.Errorf("%w: wire length must be positive, got %g", ErrInvalidArgument, length)
	}
	if diameter <= 0 {
		return 0, fmt.Errorf("%w: wire diameter must be positive, got %g", ErrInvalidArgument, diameter)
	}
	if params.Resistivity < 0 {
		return 0, fmt.Errorf("%w: resistivity must be positive, got %g", ErrInvalidArgument, params.Resistivity)
	}
	if params.FillFactor < 0 || params.FillFactor > 1 {
		return 0, fmt.Errorf("%w: fill factor must be in (0, 1], got %g", ErrInvalidArgument, params.FillFactor)
	}

	if !params.AssumeMeters && diameter > millimeterThreshold {
		logger.Warn("wire diameter looks like millimeters, rescaling to meters",
			zap.String("op", "toroid.WireResistance"),
			zap.Float64("diameter", diameter),
		)
		diameter *= 1e-3
	}

	crossSection := math.Pi / 4 * diameter * diameter
	return length * params.Resistivity / (params.FillFactor * crossSection), nil
}
