package toroid

import "fmt"

// shapeCoefficients holds the empirical constants describing a D-shaped
// toroid cross-section for one aspect ratio alpha = OD/ID. E and H scale
// the flat height and the peak half-height from the bore radius, P and S
// relate winding perimeter and enclosed area to the bore radius, and T is
// the normalized radial position of the profile peak.
type shapeCoefficients struct {
	E float64
	H float64
	P float64
	S float64
	T float64
}

// dShapeCoefficients are fits to the constant-tension D-section profile,
// tabulated per supported aspect ratio.
var dShapeCoefficients = map[int]shapeCoefficients{
	2: {E: 0.4403, H: 0.6575, P: 3.7844, S: 0.5184, T: 1.4142},
	3: {E: 0.9332, H: 1.3406, P: 6.4115, S: 1.6817, T: 1.7321},
	4: {E: 1.3290, H: 1.9490, P: 8.9670, S: 3.2421, T: 2.0000},
	5: {E: 1.6521, H: 2.4963, P: 11.4046, S: 5.0553, T: 2.2361},
}

// coefficientsFor returns the D-section constants for the given aspect
// ratio, or ErrInvalidArgument when the ratio is outside the tabulated set.
func coefficientsFor(alpha int) (shapeCoefficients, error) {
	c, ok := dShapeCoefficients[alpha]
	if !ok {
		return shapeCoefficients{}, fmt.Errorf("%w: alpha %d is outside the supported range 2-5", ErrInvalidArgument, alpha)
	}
	return c, nil
}
