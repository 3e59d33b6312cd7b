// Package drift tunes the matching network's reactance to minimize the
// sensitivity of the drive response to capacitor tolerance. It scans a
// span of reactance offsets applied to the resonant capacitor and keeps
// the one whose worst-case response shift is smallest.
package drift

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/coilworks/coil-designer/internal/network"
	"github.com/coilworks/coil-designer/internal/response"
	"go.uber.org/zap"
)

// Params configures one drift optimization.
type Params struct {
	// Tolerance is the relative capacitor tolerance to guard against,
	// e.g. 0.05 for 5% parts.
	Tolerance float64
	// ReactanceSpan is the largest relative reactance offset to try on
	// the resonant capacitor, e.g. 0.2 scans offsets in [-0.2, 0.2].
	ReactanceSpan float64
	// Steps is the number of offsets per side of the scan (default 20).
	Steps int
}

// Result summarizes the chosen adjustment.
type Result struct {
	// Offset is the relative reactance offset applied to the resonant
	// capacitor.
	Offset float64
	// BaselineDrift is the worst-case relative response shift with no
	// offset applied.
	BaselineDrift float64
	// OptimizedDrift is the worst-case relative response shift at the
	// chosen offset.
	OptimizedDrift float64
	// ResonantCapacitor is the adjusted element value in farads.
	ResonantCapacitor float64
}

// Runner executes drift optimizations over a fixed coil and network.
type Runner struct {
	logger *zap.Logger
	coil   network.Coil
	net    *network.Network
}

// NewRunner constructs a Runner for the provided synthesized network.
func NewRunner(logger *zap.Logger, coil network.Coil, net *network.Network) (*Runner, error) {
	if net == nil {
		return nil, fmt.Errorf("network cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, coil: coil, net: net}, nil
}

// Run scans the reactance span and returns the offset minimizing the
// worst-case drift. The zero offset is always part of the scan, so the
// optimized drift never exceeds the baseline.
func (r *Runner) Run(p Params) (*Result, error) {
	if p.Tolerance <= 0 || p.Tolerance >= 1 {
		return nil, fmt.Errorf("tolerance must be in (0, 1), got %g", p.Tolerance)
	}
	if p.ReactanceSpan < 0 {
		return nil, fmt.Errorf("reactance span must be non-negative, got %g", p.ReactanceSpan)
	}
	steps := p.Steps
	if steps == 0 {
		steps = 20
	}
	if steps < 1 {
		return nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	baseline := r.evaluate(0, p.Tolerance)
	best := &Result{
		Offset:            0,
		BaselineDrift:     baseline,
		OptimizedDrift:    baseline,
		ResonantCapacitor: r.net.ResonantCapacitor,
	}

	for i := -steps; i <= steps; i++ {
		if i == 0 {
			continue
		}
		offset := float64(i) / float64(steps) * p.ReactanceSpan
		d := r.evaluate(offset, p.Tolerance)
		if d < best.OptimizedDrift {
			best.Offset = offset
			best.OptimizedDrift = d
			best.ResonantCapacitor = r.net.ResonantCapacitor / (1 + offset)
		}
	}

	r.logger.Info("drift optimization complete",
		zap.String("op", "drift.Run"),
		zap.Float64("offset", best.Offset),
		zap.Float64("baselineDrift", best.BaselineDrift),
		zap.Float64("optimizedDrift", best.OptimizedDrift),
	)

	return best, nil
}

// evaluate returns the worst-case relative shift of the drive-frequency
// response magnitude when either capacitor wanders to the edge of its
// tolerance band, with the given reactance offset applied.
func (r *Runner) evaluate(offset, tolerance float64) float64 {
	adjusted := *r.net
	adjusted.ResonantCapacitor = r.net.ResonantCapacitor / (1 + offset)

	nominal := cmplx.Abs(response.At(&adjusted, r.coil, r.net.Frequency).Transfer)
	if nominal == 0 {
		return math.Inf(1)
	}

	worst := 0.0
	for _, dRes := range []float64{-tolerance, tolerance} {
		for _, dMatch := range []float64{-tolerance, tolerance} {
			perturbed := adjusted
			perturbed.ResonantCapacitor *= 1 + dRes
			perturbed.MatchCapacitor *= 1 + dMatch
			mag := cmplx.Abs(response.At(&perturbed, r.coil, r.net.Frequency).Transfer)
			shift := math.Abs(mag-nominal) / nominal
			if shift > worst {
				worst = shift
			}
		}
	}
	return worst
}
