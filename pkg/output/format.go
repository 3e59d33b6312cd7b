// Package output provides utilities for formatting and displaying design results.
package output

import (
	"fmt"
	"math/cmplx"

	"github.com/coilworks/coil-designer/internal/design"
	"github.com/coilworks/coil-designer/internal/response"
	"github.com/coilworks/coil-designer/pkg/units"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(result *design.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Matching network (f0 = %s) ---\n", units.Engineering(result.Drive, "Hz"))
	fmt.Printf("Loaded Q            | %.3f\n", result.Network.Q)
	fmt.Printf("Resonant capacitor  | %s\n", units.Engineering(result.Network.ResonantCapacitor, "F"))
	fmt.Printf("Match inductor      | %s\n", units.Engineering(result.Network.MatchInductor, "H"))
	fmt.Printf("Match capacitor     | %s\n", units.Engineering(result.Network.MatchCapacitor, "F"))

	fmt.Printf("\n--- Match inductor toroid (target %s) ---\n",
		units.Engineering(result.Toroid.Parameters.TargetInductance, "H"))
	d := result.Toroid.DShaped
	fmt.Printf("D-shaped  | ID %s | OD %s | %d turns x %d layers | wire %.2f m | %s\n",
		units.Millimeters(d.InnerDiameter), units.Millimeters(d.OuterDiameter),
		d.Turns, d.Layers, d.WireLength, units.Engineering(d.Resistance, "Ω"))
	c := result.Toroid.Circular
	fmt.Printf("Circular  | ID %s | OD %s | %d turns x %d layers | wire %.2f m | %s\n",
		units.Millimeters(c.InnerDiameter), units.Millimeters(c.OuterDiameter),
		c.Turns, c.Layers, c.WireLength, units.Engineering(c.Resistance, "Ω"))

	peak := result.Sweep.Peak()
	_, _ = p.Printf("\n--- Response ---\nPeak |H| %.4g S at %s, Zin(f0) magnitude %.4g Ω\n",
		cmplx.Abs(peak.Transfer), units.Engineering(peak.Frequency, "Hz"),
		cmplx.Abs(zinAtDrive(result)))

	if result.Drift != nil {
		fmt.Printf("\n--- Drift optimization ---\n")
		fmt.Printf("Reactance offset    | %.4g\n", result.Drift.Offset)
		fmt.Printf("Baseline drift      | %.4g\n", result.Drift.BaselineDrift)
		fmt.Printf("Optimized drift     | %.4g\n", result.Drift.OptimizedDrift)
		fmt.Printf("Resonant capacitor  | %s\n", units.Engineering(result.Drift.ResonantCapacitor, "F"))
	}
}

// CsvFormat outputs the frequency sweep in comma-separated value format.
func CsvFormat(result *design.Result) {
	fmt.Printf(`"frequency (Hz)","|Zin| (ohm)","|H| (S)","|H| (dB)"`)
	fmt.Printf("\n")
	for _, point := range result.Sweep.Points {
		fmt.Printf(`"%g","%g","%g","%g"`,
			point.Frequency, cmplx.Abs(point.Zin), cmplx.Abs(point.Transfer),
			response.MagnitudeDB(point.Transfer))
		fmt.Printf("\n")
	}
}

func zinAtDrive(result *design.Result) complex128 {
	return response.At(result.Network, result.Coil, result.Drive).Zin
}
