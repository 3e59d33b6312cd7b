package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/coilworks/coil-designer/internal/design"
	"github.com/coilworks/coil-designer/pkg/units"
)

// Report writes a plain-text listing of the network values and both
// candidate geometries.
func Report(path string, result *design.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "coil-designer report\n")
	fmt.Fprintf(&b, "====================\n\n")

	fmt.Fprintf(&b, "Drive frequency:     %s\n", units.Engineering(result.Drive, "Hz"))
	fmt.Fprintf(&b, "Coil inductance:     %s\n", units.Engineering(result.Coil.Inductance, "H"))
	fmt.Fprintf(&b, "Coil resistance:     %s\n\n", units.Engineering(result.Coil.Resistance, "Ω"))

	fmt.Fprintf(&b, "Matching network\n")
	fmt.Fprintf(&b, "  Loaded Q:           %.3f\n", result.Network.Q)
	fmt.Fprintf(&b, "  Resonant capacitor: %s\n", units.Engineering(result.Network.ResonantCapacitor, "F"))
	fmt.Fprintf(&b, "  Match inductor:     %s\n", units.Engineering(result.Network.MatchInductor, "H"))
	fmt.Fprintf(&b, "  Match capacitor:    %s\n\n", units.Engineering(result.Network.MatchCapacitor, "F"))

	d := result.Toroid.DShaped
	fmt.Fprintf(&b, "D-shaped core\n")
	fmt.Fprintf(&b, "  Inner diameter:     %s\n", units.Millimeters(d.InnerDiameter))
	fmt.Fprintf(&b, "  Outer diameter:     %s\n", units.Millimeters(d.OuterDiameter))
	fmt.Fprintf(&b, "  Flat height:        %s\n", units.Millimeters(d.FlatHeight))
	fmt.Fprintf(&b, "  Max half-height:    %s\n", units.Millimeters(d.MaxHalfHeight))
	fmt.Fprintf(&b, "  Peak radius:        %s\n", units.Millimeters(d.PeakRadius))
	fmt.Fprintf(&b, "  Turns:              %d (%d layers)\n", d.Turns, d.Layers)
	fmt.Fprintf(&b, "  Wire length:        %.2f m\n", d.WireLength)
	fmt.Fprintf(&b, "  Resistance:         %s\n\n", units.Engineering(d.Resistance, "Ω"))

	c := result.Toroid.Circular
	fmt.Fprintf(&b, "Circular core\n")
	fmt.Fprintf(&b, "  Inner diameter:     %s\n", units.Millimeters(c.InnerDiameter))
	fmt.Fprintf(&b, "  Outer diameter:     %s\n", units.Millimeters(c.OuterDiameter))
	fmt.Fprintf(&b, "  Core radius:        %s\n", units.Millimeters(c.CoreRadius))
	fmt.Fprintf(&b, "  Center radius:      %s\n", units.Millimeters(c.CenterRadius))
	fmt.Fprintf(&b, "  Turns:              %d (%d layers)\n", c.Turns, c.Layers)
	fmt.Fprintf(&b, "  Wire length:        %.2f m\n", c.WireLength)
	fmt.Fprintf(&b, "  Resistance:         %s\n", units.Engineering(c.Resistance, "Ω"))

	if result.Drift != nil {
		fmt.Fprintf(&b, "\nDrift optimization\n")
		fmt.Fprintf(&b, "  Reactance offset:   %.4g\n", result.Drift.Offset)
		fmt.Fprintf(&b, "  Baseline drift:     %.4g\n", result.Drift.BaselineDrift)
		fmt.Fprintf(&b, "  Optimized drift:    %.4g\n", result.Drift.OptimizedDrift)
		fmt.Fprintf(&b, "  Resonant capacitor: %s\n", units.Engineering(result.Drift.ResonantCapacitor, "F"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
