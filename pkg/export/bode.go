package export

import (
	"fmt"

	"github.com/coilworks/coil-designer/internal/response"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BodePlot renders the transfer magnitude of a sweep to a PNG file.
func BodePlot(path string, sweep *response.Sweep) error {
	if sweep == nil || len(sweep.Points) == 0 {
		return fmt.Errorf("sweep has no points")
	}

	p := plot.New()
	p.Title.Text = "Drive response"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "|H| (dB)"

	pts := make(plotter.XYs, len(sweep.Points))
	for i, point := range sweep.Points {
		pts[i].X = point.Frequency
		pts[i].Y = response.MagnitudeDB(point.Transfer)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build response line: %w", err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
