package units

import "testing"

func TestEngineering(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		expected string
	}{
		{name: "nanofarads", value: 4.7e-8, unit: "F", expected: "47 nF"},
		{name: "microhenries", value: 1.05e-4, unit: "H", expected: "105 µH"},
		{name: "milliohms", value: -3.3e-3, unit: "Ω", expected: "-3.3 mΩ"},
		{name: "kilohertz", value: 25e3, unit: "Hz", expected: "25 kHz"},
		{name: "plain ohms", value: 50.0, unit: "Ω", expected: "50 Ω"},
		{name: "zero", value: 0, unit: "H", expected: "0 H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Engineering(tt.value, tt.unit); got != tt.expected {
				t.Errorf("Engineering(%g, %q) = %q, expected %q", tt.value, tt.unit, got, tt.expected)
			}
		})
	}
}

func TestMillimeters(t *testing.T) {
	if got := Millimeters(0.0032); got != "3.20 mm" {
		t.Errorf("Millimeters(0.0032) = %q, expected \"3.20 mm\"", got)
	}
}
