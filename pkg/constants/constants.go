// Package constants provides shared constants for the coil-designer application.
package constants

import "math"

// Physical constants
const (
	// Mu0 is the vacuum permeability (H/m)
	Mu0 = 4 * math.Pi * 1e-7

	// CopperResistivity is the resistivity of annealed copper at 20 C (ohm-m)
	CopperResistivity = 1.68e-8
)

// Toroid optimizer constants
const (
	// KSearchUpperBound is the upper edge of the bracket used when solving for
	// the dimensionless winding parameter K.
	KSearchUpperBound = 1e5

	// DefaultFillFactor is the conductor fill factor assumed for solid wire.
	DefaultFillFactor = 1.0

	// DefaultCoreMu is the relative permeability for an air core.
	DefaultCoreMu = 1.0

	// DefaultLayers is the number of winding layers assumed when unset.
	DefaultLayers = 2
)

// Sweep constants
const (
	// DefaultSweepPoints is the number of frequency points when unset.
	DefaultSweepPoints = 200

	// SweepSpacingLinear spaces frequency points linearly.
	SweepSpacingLinear = "lin"

	// SweepSpacingDecade spaces frequency points per decade.
	SweepSpacingDecade = "dec"

	// SweepSpacingOctave spaces frequency points per octave.
	SweepSpacingOctave = "oct"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server constants
const (
	// DefaultServerAddress is the listen address for the design API.
	DefaultServerAddress = ":8287"

	// DefaultMaxUploadSizeBytes caps the size of an uploaded configuration.
	DefaultMaxUploadSizeBytes = 1 << 20
)
