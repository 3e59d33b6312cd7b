// Package units provides engineering-notation formatting for component
// values and dimensions.
package units

import (
	"fmt"
	"math"
)

type prefix struct {
	symbol string
	scale  float64
}

var prefixes = []prefix{
	{"p", 1e-12},
	{"n", 1e-9},
	{"µ", 1e-6},
	{"m", 1e-3},
	{"", 1},
	{"k", 1e3},
	{"M", 1e6},
}

// Engineering formats a value with an SI prefix chosen so the mantissa
// lands in [1, 1000), e.g. Engineering(4.7e-8, "F") == "47 nF".
func Engineering(value float64, unit string) string {
	if value == 0 {
		return fmt.Sprintf("0 %s", unit)
	}

	abs := math.Abs(value)
	chosen := prefixes[len(prefixes)-1]
	for _, p := range prefixes {
		if abs < p.scale*1000 {
			chosen = p
			break
		}
	}

	return fmt.Sprintf("%.4g %s%s", value/chosen.scale, chosen.symbol, unit)
}

// Millimeters formats a length given in meters as millimeters, the
// customary unit on winding drawings.
func Millimeters(meters float64) string {
	return fmt.Sprintf("%.2f mm", meters*1e3)
}
