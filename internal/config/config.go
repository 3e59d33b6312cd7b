// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/coilworks/coil-designer/pkg/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for coil-designer.
type Configuration struct {
	Coil    CoilConfig    `yaml:"coil"`
	Toroid  ToroidConfig  `yaml:"toroid"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Drift   DriftConfig   `yaml:"drift,omitempty"`
	Export  ExportConfig  `yaml:"export,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// CoilConfig is the electrical model of the drive coil.
type CoilConfig struct {
	Inductance      float64 `yaml:"inductance"`      // henries
	Resistance      float64 `yaml:"resistance"`      // ohms
	Frequency       float64 `yaml:"frequency"`       // hertz
	TargetImpedance float64 `yaml:"targetImpedance"` // ohms
}

// ToroidConfig parametrizes the matching-inductor geometry solve.
type ToroidConfig struct {
	WireDiameter float64 `yaml:"wireDiameter"` // meters
	// TargetInductance overrides the synthesized match inductance when
	// set; zero means size the toroid for the synthesized value.
	TargetInductance float64 `yaml:"targetInductance,omitempty"` // henries
	Layers           int     `yaml:"layers,omitempty"`
	Alpha            int     `yaml:"alpha,omitempty"`
	CoreMu           float64 `yaml:"coreMu,omitempty"`
	FillFactor       float64 `yaml:"fillFactor,omitempty"`
	Resistivity      float64 `yaml:"resistivity,omitempty"` // ohm-meters
}

// SweepConfig bounds the frequency-response evaluation.
type SweepConfig struct {
	StartFreq float64 `yaml:"startFreq"` // hertz
	StopFreq  float64 `yaml:"stopFreq"`  // hertz
	Points    int     `yaml:"points,omitempty"`
	Spacing   string  `yaml:"spacing,omitempty"` // lin, dec, oct
}

// DriftConfig enables and tunes the drift optimization pass.
type DriftConfig struct {
	Enabled       bool    `yaml:"enabled,omitempty"`
	Tolerance     float64 `yaml:"tolerance,omitempty"`
	ReactanceSpan float64 `yaml:"reactanceSpan,omitempty"`
	Steps         int     `yaml:"steps,omitempty"`
}

// ExportConfig selects optional artifacts written after the design run.
type ExportConfig struct {
	// Name is the base name of exported files; empty disables all
	// exports.
	Name        string `yaml:"name,omitempty"`
	Directory   string `yaml:"directory,omitempty"`
	SVG         bool   `yaml:"svg,omitempty"`
	Report      bool   `yaml:"report,omitempty"`
	XLSX        bool   `yaml:"xlsx,omitempty"`
	Plot        bool   `yaml:"plot,omitempty"`
	CurvePoints int    `yaml:"curvePoints,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ParseConfiguration decodes a YAML document into a Configuration, used by
// the design API where the config arrives as a request body.
func ParseConfiguration(data []byte) (*Configuration, error) {
	var configuration Configuration
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset optional fields with their defaults.
func (conf *Configuration) ApplyDefaults() {
	if conf.Toroid.Layers == 0 {
		conf.Toroid.Layers = constants.DefaultLayers
	}
	if conf.Toroid.Alpha == 0 {
		conf.Toroid.Alpha = 2
	}
	if conf.Toroid.CoreMu == 0 {
		conf.Toroid.CoreMu = constants.DefaultCoreMu
	}
	if conf.Toroid.FillFactor == 0 {
		conf.Toroid.FillFactor = constants.DefaultFillFactor
	}
	if conf.Toroid.Resistivity == 0 {
		conf.Toroid.Resistivity = constants.CopperResistivity
	}
	if conf.Sweep.Points == 0 {
		conf.Sweep.Points = constants.DefaultSweepPoints
	}
	if conf.Sweep.Spacing == "" {
		conf.Sweep.Spacing = constants.SweepSpacingLinear
	}
	if conf.Sweep.StartFreq == 0 && conf.Coil.Frequency > 0 {
		conf.Sweep.StartFreq = conf.Coil.Frequency / 4
	}
	if conf.Sweep.StopFreq == 0 && conf.Coil.Frequency > 0 {
		conf.Sweep.StopFreq = conf.Coil.Frequency * 4
	}
	if conf.Drift.Tolerance == 0 {
		conf.Drift.Tolerance = 0.05
	}
	if conf.Drift.ReactanceSpan == 0 {
		conf.Drift.ReactanceSpan = 0.2
	}
	if conf.Drift.Steps == 0 {
		conf.Drift.Steps = 20
	}
	if conf.Export.CurvePoints == 0 {
		conf.Export.CurvePoints = 200
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
}

// Validate checks the hard physical preconditions of a design run.
func (conf *Configuration) Validate() error {
	if conf.Coil.Inductance <= 0 {
		return fmt.Errorf("coil inductance must be positive, got %g", conf.Coil.Inductance)
	}
	if conf.Coil.Resistance <= 0 {
		return fmt.Errorf("coil resistance must be positive, got %g", conf.Coil.Resistance)
	}
	if conf.Coil.Frequency <= 0 {
		return fmt.Errorf("coil frequency must be positive, got %g", conf.Coil.Frequency)
	}
	if conf.Coil.TargetImpedance <= 0 {
		return fmt.Errorf("target impedance must be positive, got %g", conf.Coil.TargetImpedance)
	}
	if conf.Toroid.WireDiameter <= 0 {
		return fmt.Errorf("wire diameter must be positive, got %g", conf.Toroid.WireDiameter)
	}
	return nil
}

// ValidateConfiguration inspects the configuration for suspicious values
// and returns human-readable warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Toroid.WireDiameter > 0.1 {
		warnings = append(warnings, fmt.Sprintf(
			"wire diameter %g looks like millimeters; all lengths are expected in meters",
			conf.Toroid.WireDiameter))
	}
	if conf.Coil.Frequency > 1e6 {
		warnings = append(warnings, fmt.Sprintf(
			"drive frequency %g Hz is above 1 MHz; the DC resistance model ignores skin effect",
			conf.Coil.Frequency))
	}
	if conf.Toroid.FillFactor == 1 && conf.Toroid.WireDiameter > 1e-3 {
		warnings = append(warnings,
			"fill factor 1 with thick wire; litz bundles usually need a fill factor below 1")
	}
	if conf.Sweep.StartFreq >= conf.Coil.Frequency || conf.Sweep.StopFreq <= conf.Coil.Frequency {
		warnings = append(warnings, fmt.Sprintf(
			"sweep [%g, %g] does not bracket the drive frequency %g",
			conf.Sweep.StartFreq, conf.Sweep.StopFreq, conf.Coil.Frequency))
	}

	return warnings
}
