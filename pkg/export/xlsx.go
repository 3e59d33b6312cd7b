package export

import (
	"fmt"
	"math/cmplx"

	"github.com/coilworks/coil-designer/internal/design"
	"github.com/coilworks/coil-designer/internal/response"
	"github.com/xuri/excelize/v2"
)

// Workbook writes the component summary and the full frequency sweep to an
// xlsx workbook with a Summary and a Sweep sheet.
func Workbook(path string, result *design.Result) error {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	rows := [][]interface{}{
		{"Quantity", "Value", "Unit"},
		{"Drive frequency", result.Drive, "Hz"},
		{"Coil inductance", result.Coil.Inductance, "H"},
		{"Coil resistance", result.Coil.Resistance, "ohm"},
		{"Loaded Q", result.Network.Q, ""},
		{"Resonant capacitor", result.Network.ResonantCapacitor, "F"},
		{"Match inductor", result.Network.MatchInductor, "H"},
		{"Match capacitor", result.Network.MatchCapacitor, "F"},
		{"D-core inner diameter", result.Toroid.DShaped.InnerDiameter, "m"},
		{"D-core outer diameter", result.Toroid.DShaped.OuterDiameter, "m"},
		{"D-core turns", result.Toroid.DShaped.Turns, ""},
		{"D-core wire length", result.Toroid.DShaped.WireLength, "m"},
		{"D-core resistance", result.Toroid.DShaped.Resistance, "ohm"},
		{"Circular inner diameter", result.Toroid.Circular.InnerDiameter, "m"},
		{"Circular outer diameter", result.Toroid.Circular.OuterDiameter, "m"},
		{"Circular turns", result.Toroid.Circular.Turns, ""},
		{"Circular wire length", result.Toroid.Circular.WireLength, "m"},
		{"Circular resistance", result.Toroid.Circular.Resistance, "ohm"},
	}
	if result.Drift != nil {
		rows = append(rows,
			[]interface{}{"Drift reactance offset", result.Drift.Offset, ""},
			[]interface{}{"Baseline drift", result.Drift.BaselineDrift, ""},
			[]interface{}{"Optimized drift", result.Drift.OptimizedDrift, ""},
		)
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to address summary cell: %w", err)
			}
			if err := f.SetCellValue(summary, cell, value); err != nil {
				return fmt.Errorf("failed to write summary cell: %w", err)
			}
		}
	}

	sweep := "Sweep"
	if _, err := f.NewSheet(sweep); err != nil {
		return fmt.Errorf("failed to create sweep sheet: %w", err)
	}
	headers := []string{"frequency (Hz)", "|Zin| (ohm)", "|H| (S)", "|H| (dB)"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sweep, cell, h); err != nil {
			return fmt.Errorf("failed to write sweep header: %w", err)
		}
	}
	for i, point := range result.Sweep.Points {
		values := []float64{
			point.Frequency,
			cmplx.Abs(point.Zin),
			cmplx.Abs(point.Transfer),
			response.MagnitudeDB(point.Transfer),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sweep, cell, value); err != nil {
				return fmt.Errorf("failed to write sweep cell: %w", err)
			}
		}
	}

	return f.SaveAs(path)
}
