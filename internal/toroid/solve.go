package toroid

import (
	"fmt"
	"math"
)

const (
	solveTolerance     = 1e-12
	solveMaxIterations = 200
)

// solveK finds the root of the signed residual on [0, hi] by bisection.
// The residual is monotonically increasing in K for both core shapes, so a
// sign change across the bracket guarantees a unique root.
func solveK(residual func(float64) float64, hi float64) (float64, error) {
	lo := 0.0
	flo := residual(lo)
	fhi := residual(hi)

	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if flo*fhi > 0 {
		return 0, fmt.Errorf("%w: no sign change on [0, %g]", ErrRootFindFailure, hi)
	}

	for i := 0; i < solveMaxIterations; i++ {
		mid := 0.5 * (lo + hi)
		fmid := residual(mid)
		if fmid == 0 || hi-lo < solveTolerance*math.Max(1, mid) {
			return mid, nil
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}

	return 0, fmt.Errorf("%w: did not converge in %d iterations", ErrRootFindFailure, solveMaxIterations)
}
