// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/coilworks/coil-designer/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (expected %q or %q)",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV)
}

// ValidateSweepSpacing checks that the requested sweep spacing is supported.
func ValidateSweepSpacing(spacing string) error {
	switch spacing {
	case constants.SweepSpacingLinear, constants.SweepSpacingDecade, constants.SweepSpacingOctave:
		return nil
	}
	return fmt.Errorf("unsupported sweep spacing %q (expected %q, %q, or %q)",
		spacing, constants.SweepSpacingLinear, constants.SweepSpacingDecade, constants.SweepSpacingOctave)
}
