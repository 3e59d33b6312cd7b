// Package design runs the full coil-designer pipeline: matching network
// synthesis, toroid geometry optimization for the match inductor,
// frequency-response simulation, and the optional drift pass.
package design

import (
	"fmt"

	"github.com/coilworks/coil-designer/internal/config"
	"github.com/coilworks/coil-designer/internal/drift"
	"github.com/coilworks/coil-designer/internal/network"
	"github.com/coilworks/coil-designer/internal/response"
	"github.com/coilworks/coil-designer/internal/toroid"
	"go.uber.org/zap"
)

// Result aggregates every artifact of one design run.
type Result struct {
	Network *network.Network
	Toroid  *toroid.CombinedResult
	Sweep   *response.Sweep
	Drift   *drift.Result
	Coil    network.Coil
	Drive   float64
}

// Run executes the pipeline for the given configuration. The configuration
// must already be defaulted and validated.
func Run(logger *zap.Logger, conf *config.Configuration) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	coil := network.Coil{
		Inductance: conf.Coil.Inductance,
		Resistance: conf.Coil.Resistance,
	}

	net, err := network.Synthesize(network.Params{
		Coil:            coil,
		Frequency:       conf.Coil.Frequency,
		TargetImpedance: conf.Coil.TargetImpedance,
	})
	if err != nil {
		return nil, fmt.Errorf("network synthesis: %w", err)
	}

	logger.Info("matching network synthesized",
		zap.String("op", "design.Run"),
		zap.Float64("q", net.Q),
		zap.Float64("resonantCapacitor", net.ResonantCapacitor),
		zap.Float64("matchInductor", net.MatchInductor),
		zap.Float64("matchCapacitor", net.MatchCapacitor),
	)

	targetInductance := conf.Toroid.TargetInductance
	if targetInductance == 0 {
		targetInductance = net.MatchInductor
	}

	geometry, err := toroid.Optimize(logger, toroid.Spec{
		WireDiameter:     conf.Toroid.WireDiameter,
		TargetInductance: targetInductance,
		Layers:           conf.Toroid.Layers,
		CoreMu:           conf.Toroid.CoreMu,
		Alpha:            conf.Toroid.Alpha,
		FillFactor:       conf.Toroid.FillFactor,
		Resistivity:      conf.Toroid.Resistivity,
	})
	if err != nil {
		return nil, fmt.Errorf("toroid optimization: %w", err)
	}

	sweep, err := response.Simulate(net, coil, response.SweepSpec{
		StartFreq: conf.Sweep.StartFreq,
		StopFreq:  conf.Sweep.StopFreq,
		Points:    conf.Sweep.Points,
		Spacing:   conf.Sweep.Spacing,
	})
	if err != nil {
		return nil, fmt.Errorf("response simulation: %w", err)
	}

	result := &Result{
		Network: net,
		Toroid:  geometry,
		Sweep:   sweep,
		Coil:    coil,
		Drive:   conf.Coil.Frequency,
	}

	if conf.Drift.Enabled {
		runner, err := drift.NewRunner(logger, coil, net)
		if err != nil {
			return nil, fmt.Errorf("drift optimizer: %w", err)
		}
		driftResult, err := runner.Run(drift.Params{
			Tolerance:     conf.Drift.Tolerance,
			ReactanceSpan: conf.Drift.ReactanceSpan,
			Steps:         conf.Drift.Steps,
		})
		if err != nil {
			return nil, fmt.Errorf("drift optimizer: %w", err)
		}
		result.Drift = driftResult
	}

	return result, nil
}
