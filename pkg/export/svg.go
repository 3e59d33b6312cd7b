// Package export writes design artifacts: a cross-section drawing, a text
// report, a sweep workbook, and a Bode plot. Every exporter consumes
// already-computed values and has no effect on the design itself.
package export

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/coilworks/coil-designer/internal/toroid"
)

// svgScale converts meters to drawing units (one unit per tenth of a
// millimeter) so typical cores fill the canvas.
const svgScale = 1e4

// svgMargin is the canvas margin in drawing units.
const svgMargin = 50

// CrossSectionSVG draws the closed D-core boundary curve to an SVG file.
// The drawing is dimensioned in millimeters.
func CrossSectionSVG(path string, curve toroid.BoundaryCurve) error {
	if len(curve) < 3 {
		return fmt.Errorf("boundary curve has too few points: %d", len(curve))
	}

	minR, maxR := curve[0].R, curve[0].R
	minZ, maxZ := curve[0].Z, curve[0].Z
	for _, p := range curve {
		if p.R < minR {
			minR = p.R
		}
		if p.R > maxR {
			maxR = p.R
		}
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	width := int((maxR-minR)*svgScale) + 2*svgMargin
	height := int((maxZ-minZ)*svgScale) + 2*svgMargin

	xs := make([]int, len(curve))
	ys := make([]int, len(curve))
	for i, p := range curve {
		xs[i] = svgMargin + int((p.R-minR)*svgScale)
		ys[i] = svgMargin + int((maxZ-p.Z)*svgScale)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	canvas := svg.New(file)
	canvas.Start(width, height)
	canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:2")
	canvas.Text(svgMargin, height-svgMargin/2,
		fmt.Sprintf("r = %.2f .. %.2f mm, height = %.2f mm", minR*1e3, maxR*1e3, (maxZ-minZ)*1e3),
		"font-family:monospace;font-size:14px")
	canvas.End()

	return nil
}
