package toroid

import (
	"errors"
	"testing"
)

func TestPackedInnerDiametersSingleLayerIdentity(t *testing.T) {
	diameters, err := PackedInnerDiameters(1, 0.06, 2e-3)
	if err != nil {
		t.Fatalf("PackedInnerDiameters() error = %v", err)
	}
	if len(diameters) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(diameters))
	}
	if diameters[0] != 0.06 {
		t.Errorf("single layer should return the baseline diameter, got %g", diameters[0])
	}
}

func TestPackedInnerDiametersLayerCount(t *testing.T) {
	diameters, err := PackedInnerDiameters(4, 0.06, 2e-3)
	if err != nil {
		t.Fatalf("PackedInnerDiameters() error = %v", err)
	}
	if len(diameters) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(diameters))
	}
	for i, d := range diameters {
		if d <= 0 {
			t.Errorf("layer %d diameter should be positive, got %g", i+1, d)
		}
	}
	if diameters[0] != 0.06 {
		t.Errorf("first layer should sit at the baseline diameter, got %g", diameters[0])
	}
}

func TestPackedInnerDiametersInfeasibleWire(t *testing.T) {
	// A 2 mm wire cannot nest against a 1 mm winding diameter.
	_, err := PackedInnerDiameters(2, 1e-3, 2e-3)
	if !errors.Is(err, ErrGeometryInfeasible) {
		t.Errorf("expected ErrGeometryInfeasible, got %v", err)
	}
}

func TestPackedInnerDiametersRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		layers   int
		baseline float64
		wire     float64
	}{
		{name: "zero layers", layers: 0, baseline: 0.06, wire: 2e-3},
		{name: "zero baseline", layers: 2, baseline: 0, wire: 2e-3},
		{name: "negative wire", layers: 2, baseline: 0.06, wire: -1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PackedInnerDiameters(tt.layers, tt.baseline, tt.wire)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
