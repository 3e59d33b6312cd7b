package toroid

import (
	"fmt"
	"math"
)

// PackedInnerDiameters returns the effective bore diameter of each winding
// layer, in layer order. The first layer sits at baselineDiameter; every
// further layer nests in the grooves left by the previous layer's turns,
// which shifts its effective winding radius.
func PackedInnerDiameters(layers int, baselineDiameter, wireDiameter float64) ([]float64, error) {
	if layers < 1 {
		return nil, fmt.Errorf("%w: layers must be at least 1, got %d", ErrInvalidArgument, layers)
	}
	if baselineDiameter <= 0 {
		return nil, fmt.Errorf("%w: baseline diameter must be positive, got %g", ErrInvalidArgument, baselineDiameter)
	}
	if wireDiameter <= 0 {
		return nil, fmt.Errorf("%w: wire diameter must be positive, got %g", ErrInvalidArgument, wireDiameter)
	}

	diameters := make([]float64, layers)
	radius := baselineDiameter / 2
	diameters[0] = 2 * radius

	for layer := 1; layer < layers; layer++ {
		if wireDiameter > 2*radius {
			return nil, fmt.Errorf("%w: wire diameter %g exceeds layer %d winding diameter %g",
				ErrGeometryInfeasible, wireDiameter, layer, 2*radius)
		}
		// Half-angle subtended by one wire resting against the previous
		// layer's turn.
		phi := math.Asin(wireDiameter / (2 * radius))
		sin := radius * math.Sin(phi)
		radius = radius*math.Cos(phi) + math.Sqrt(wireDiameter*wireDiameter-sin*sin)
		diameters[layer] = 2 * radius
	}

	return diameters, nil
}
