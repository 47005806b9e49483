package lattice

import "errors"

// Sentinel errors shared across the pricing packages. Callers match with
// errors.Is; wrapped messages carry the offending values.
var (
	ErrInvalidArgument           = errors.New("invalid argument")
	ErrDegenerateLattice         = errors.New("degenerate lattice")
	ErrNumericalDegeneracy       = errors.New("numerical degeneracy")
	ErrCalibrationNonConvergence = errors.New("calibration failed to converge")
)
