package sim

import "errors"

// Failure taxonomy for a single scenario evaluation. Every error returned by
// this package wraps exactly one of these sentinels; callers discriminate
// with errors.Is. All failures are deterministic and local to the evaluation
// that raised them — one bad scenario never corrupts another.
var (
	ErrInvalidParameters    = errors.New("invalid model parameters")
	ErrInvalidTimeGrid      = errors.New("invalid time grid")
	ErrInvalidIntervention  = errors.New("invalid intervention")
	ErrNumericalInstability = errors.New("numerical instability")
)
