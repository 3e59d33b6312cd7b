package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coilworks/coil-designer/internal/config"
	"github.com/coilworks/coil-designer/internal/design"
	"github.com/coilworks/coil-designer/internal/toroid"
	"go.uber.org/zap"
)

// WriteAll produces every artifact enabled in the export configuration.
// Artifacts are independent; the first failure aborts.
func WriteAll(logger *zap.Logger, conf config.ExportConfig, result *design.Result) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf.Name == "" {
		return nil
	}

	if conf.Directory != "" {
		if err := os.MkdirAll(conf.Directory, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	base := filepath.Join(conf.Directory, conf.Name)

	if conf.SVG {
		curve, err := toroid.SampleBoundary(
			result.Toroid.DShaped.InnerDiameter/2,
			result.Toroid.DShaped.OuterDiameter/2,
			toroid.BoundaryOptions{TargetPoints: conf.CurvePoints},
		)
		if err != nil {
			return fmt.Errorf("boundary sampling: %w", err)
		}
		path := base + "-cross-section.svg"
		if err := CrossSectionSVG(path, curve); err != nil {
			return err
		}
		logger.Info("wrote cross-section drawing",
			zap.String("op", "export.WriteAll"),
			zap.String("path", path),
		)
	}

	if conf.Report {
		path := base + "-report.txt"
		if err := Report(path, result); err != nil {
			return err
		}
		logger.Info("wrote text report",
			zap.String("op", "export.WriteAll"),
			zap.String("path", path),
		)
	}

	if conf.XLSX {
		path := base + ".xlsx"
		if err := Workbook(path, result); err != nil {
			return err
		}
		logger.Info("wrote workbook",
			zap.String("op", "export.WriteAll"),
			zap.String("path", path),
		)
	}

	if conf.Plot {
		path := base + "-bode.png"
		if err := BodePlot(path, result.Sweep); err != nil {
			return err
		}
		logger.Info("wrote response plot",
			zap.String("op", "export.WriteAll"),
			zap.String("path", path),
		)
	}

	return nil
}
