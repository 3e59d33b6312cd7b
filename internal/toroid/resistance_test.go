package toroid

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestWireResistanceKnownValue(t *testing.T) {
	// 1 m of 1 mm solid copper.
	r, err := WireResistance(nil, 1, 1e-3, ResistanceParams{AssumeMeters: true})
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	expected := 1.68e-8 / (math.Pi / 4 * 1e-6)
	if math.Abs(r-expected)/expected > 1e-12 {
		t.Errorf("WireResistance() = %g, expected %g", r, expected)
	}
}

func TestWireResistanceScalesLinearlyWithLength(t *testing.T) {
	params := ResistanceParams{FillFactor: 0.7, AssumeMeters: true}
	r1, err := WireResistance(nil, 3, 1e-3, params)
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	r2, err := WireResistance(nil, 6, 1e-3, params)
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	if math.Abs(r2-2*r1)/r2 > 1e-12 {
		t.Errorf("doubling length should double resistance: %g vs %g", r1, r2)
	}
}

func TestWireResistanceScalesInverselyWithFillFactor(t *testing.T) {
	full, err := WireResistance(nil, 1, 1e-3, ResistanceParams{FillFactor: 1, AssumeMeters: true})
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	half, err := WireResistance(nil, 1, 1e-3, ResistanceParams{FillFactor: 0.5, AssumeMeters: true})
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	if math.Abs(half-2*full)/half > 1e-12 {
		t.Errorf("halving fill factor should double resistance: %g vs %g", full, half)
	}
}

func TestWireResistanceMillimeterCorrection(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	// A 2.0 "meter" diameter is clearly millimeters; the legacy shim
	// rescales it when AssumeMeters is off.
	corrected, err := WireResistance(logger, 1, 2.0, ResistanceParams{})
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	meters, err := WireResistance(logger, 1, 2e-3, ResistanceParams{AssumeMeters: true})
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	if math.Abs(corrected-meters)/meters > 1e-12 {
		t.Errorf("millimeter correction should match the meter value: %g vs %g", corrected, meters)
	}

	// With AssumeMeters set, the value is taken literally.
	literal, err := WireResistance(logger, 1, 2.0, ResistanceParams{AssumeMeters: true})
	if err != nil {
		t.Fatalf("WireResistance() error = %v", err)
	}
	if literal >= meters/1e3 {
		t.Errorf("literal 2 m diameter should give a far smaller resistance, got %g", literal)
	}
}

func TestWireResistanceRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		length   float64
		diameter float64
		params   ResistanceParams
	}{
		{name: "zero length", length: 0, diameter: 1e-3},
		{name: "negative diameter", length: 1, diameter: -1e-3},
		{name: "fill factor above one", length: 1, diameter: 1e-3, params: ResistanceParams{FillFactor: 1.2}},
		{name: "negative resistivity", length: 1, diameter: 1e-3, params: ResistanceParams{Resistivity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WireResistance(nil, tt.length, tt.diameter, tt.params)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
