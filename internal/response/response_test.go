package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/coilworks/coil-designer/internal/network"
)

func testNetwork(t *testing.T) (*network.Network, network.Coil) {
	t.Helper()
	coil := network.Coil{Inductance: 100e-6, Resistance: 0.5}
	net, err := network.Synthesize(network.Params{
		Coil:            coil,
		Frequency:       25e3,
		TargetImpedance: 50,
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	return net, coil
}

func TestFrequenciesLinear(t *testing.T) {
	freqs, err := Frequencies(SweepSpec{StartFreq: 1e3, StopFreq: 5e3, Points: 5, Spacing: "lin"})
	if err != nil {
		t.Fatalf("Frequencies() error = %v", err)
	}
	expected := []float64{1e3, 2e3, 3e3, 4e3, 5e3}
	if len(freqs) != len(expected) {
		t.Fatalf("expected %d points, got %d", len(expected), len(freqs))
	}
	for i, f := range freqs {
		if math.Abs(f-expected[i]) > 1e-9 {
			t.Errorf("point %d: %g, expected %g", i, f, expected[i])
		}
	}
}

func TestFrequenciesDecade(t *testing.T) {
	freqs, err := Frequencies(SweepSpec{StartFreq: 1e3, StopFreq: 1e6, Points: 4, Spacing: "dec"})
	if err != nil {
		t.Fatalf("Frequencies() error = %v", err)
	}
	if freqs[0] != 1e3 || freqs[len(freqs)-1] != 1e6 {
		t.Errorf("sweep edges should be exact: %g .. %g", freqs[0], freqs[len(freqs)-1])
	}
	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			t.Errorf("frequencies should increase: %g then %g", freqs[i-1], freqs[i])
		}
	}
}

func TestFrequenciesRejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec SweepSpec
	}{
		{name: "zero start", spec: SweepSpec{StopFreq: 1e6}},
		{name: "stop below start", spec: SweepSpec{StartFreq: 1e6, StopFreq: 1e3}},
		{name: "one point", spec: SweepSpec{StartFreq: 1e3, StopFreq: 1e6, Points: 1}},
		{name: "unknown spacing", spec: SweepSpec{StartFreq: 1e3, StopFreq: 1e6, Spacing: "log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Frequencies(tt.spec)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestInputImpedanceMatchedAtDriveFrequency(t *testing.T) {
	net, coil := testNetwork(t)

	point := At(net, coil, 25e3)
	if math.Abs(real(point.Zin)-50)/50 > 1e-6 {
		t.Errorf("Re(Zin) at f0 = %g, expected 50", real(point.Zin))
	}
	if math.Abs(imag(point.Zin)) > 50*1e-6 {
		t.Errorf("Im(Zin) at f0 = %g, expected ~0", imag(point.Zin))
	}
}

func TestSimulatePeaksInsideSweep(t *testing.T) {
	net, coil := testNetwork(t)

	sweep, err := Simulate(net, coil, SweepSpec{
		StartFreq: 6.25e3,
		StopFreq:  100e3,
		Points:    401,
		Spacing:   "lin",
	})
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if len(sweep.Points) != 401 {
		t.Fatalf("expected 401 points, got %d", len(sweep.Points))
	}

	peak := sweep.Peak()
	first := sweep.Points[0]
	last := sweep.Points[len(sweep.Points)-1]

	if peak.Frequency <= first.Frequency || peak.Frequency >= last.Frequency {
		t.Errorf("resonant peak %g should be strictly inside the sweep", peak.Frequency)
	}
	if cmplx.Abs(peak.Transfer) <= cmplx.Abs(first.Transfer) ||
		cmplx.Abs(peak.Transfer) <= cmplx.Abs(last.Transfer) {
		t.Errorf("peak magnitude should exceed the sweep edges")
	}
}

func TestMagnitudeDB(t *testing.T) {
	if db := MagnitudeDB(complex(1, 0)); math.Abs(db) > 1e-12 {
		t.Errorf("0 dB expected for unit magnitude, got %g", db)
	}
	if db := MagnitudeDB(complex(10, 0)); math.Abs(db-20) > 1e-12 {
		t.Errorf("20 dB expected for magnitude 10, got %g", db)
	}
}
