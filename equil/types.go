package equil

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/phaseq/basis"
)

// StatePair selects the property pair held fixed during a solve.
type StatePair int

const (
	// TP holds temperature and pressure fixed.
	TP StatePair = iota

	// HP holds enthalpy and pressure fixed; temperature is solved for.
	HP

	// SP holds entropy and pressure fixed; temperature is solved for.
	SP

	// TV holds temperature and volume fixed; pressure is solved for.
	TV
)

// String returns the conventional two-letter name of the pair.
func (p StatePair) String() string {
	switch p {
	case TP:
		return "TP"
	case HP:
		return "HP"
	case SP:
		return "SP"
	case TV:
		return "TV"
	default:
		return fmt.Sprintf("StatePair(%d)", int(p))
	}
}

// Status reports where a Solver is in its lifecycle. TP solves move
// straight from NotStarted to InnerIterating; the other pairs alternate
// between OuterIterating and InnerIterating until they finish in
// Converged or Failed.
type Status int

const (
	// NotStarted means Solve has not been called yet.
	NotStarted Status = iota

	// OuterIterating means the solver is adjusting temperature or
	// pressure toward the fixed-property target.
	OuterIterating

	// InnerIterating means the solver is relaxing the composition at
	// fixed temperature and pressure.
	InnerIterating

	// Converged means the last Solve reached equilibrium.
	Converged

	// Failed means the last Solve returned an error.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case OuterIterating:
		return "OuterIterating"
	case InnerIterating:
		return "InnerIterating"
	case Converged:
		return "Converged"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Sentinel errors returned by Solve.
var (
	// ErrNilMixture indicates that the solver was built on a nil mixture.
	ErrNilMixture = errors.New("equil: mixture is nil")

	// ErrBadPair indicates an unknown StatePair value.
	ErrBadPair = errors.New("equil: unknown state pair")

	// ErrNotConverged indicates an exhausted iteration budget; returned
	// as a *ConvergenceError carrying the post-mortem counters.
	ErrNotConverged = errors.New("equil: equilibrium not reached")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("equil: Tolerance must be positive")

	// ErrBadMaxSteps indicates a non-positive inner step budget.
	ErrBadMaxSteps = errors.New("equil: MaxSteps must be at least 1")

	// ErrBadMaxOuterIter indicates a non-positive outer iteration budget.
	ErrBadMaxOuterIter = errors.New("equil: MaxOuterIter must be at least 1")
)

// ConvergenceError reports an exhausted iteration budget together with
// the state of the solve at the moment it gave up. It unwraps to
// ErrNotConverged.
type ConvergenceError struct {
	// Pair is the property pair the solve was holding fixed.
	Pair StatePair

	// Steps is the total number of inner steps taken.
	Steps int

	// OuterIters is the number of completed outer iterations (zero for
	// TP solves).
	OuterIters int

	// Residual is the last convergence-test value: max |ΔG/RT| for the
	// inner loop, the relative property mismatch for the outer loop.
	Residual float64
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf(
		"equil: %s equilibrium not reached after %d steps (%d outer iterations), residual %.3e",
		e.Pair, e.Steps, e.OuterIters, e.Residual)
}

// Unwrap lets errors.Is match ErrNotConverged.
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// Default budgets and tolerance of the solver.
const (
	// DefaultTolerance bounds max |ΔG/RT| at convergence and the
	// relative property mismatch of the outer loop.
	DefaultTolerance = 1.0e-9

	// DefaultMaxSteps is the inner step budget per fixed-TP relaxation.
	DefaultMaxSteps = 1000

	// DefaultMaxOuterIter is the outer iteration budget for HP, SP and
	// TV solves.
	DefaultMaxOuterIter = 200
)

// Options configures a Solver. Zero values are replaced by the defaults
// through DefaultOptions; use the With* helpers to override fields.
type Options struct {
	// Tolerance is the convergence threshold for both loops.
	Tolerance float64

	// MaxSteps bounds the inner steps of one fixed-TP relaxation.
	MaxSteps int

	// MaxOuterIter bounds the outer iterations of HP, SP and TV solves.
	MaxOuterIter int

	// Logger receives per-step diagnostics. Control verbosity by the
	// level set on the logger itself; the default discards everything.
	Logger zerolog.Logger

	// BasisOpts are forwarded to every basis.Optimize call.
	BasisOpts []basis.Option
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithTolerance overrides the convergence tolerance. Must be positive;
// invalid values panic with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxSteps overrides the inner step budget. Must be at least 1;
// invalid values panic with ErrBadMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// WithMaxOuterIter overrides the outer iteration budget. Must be at
// least 1; invalid values panic with ErrBadMaxOuterIter.
func WithMaxOuterIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxOuterIter.Error())
		}
		o.MaxOuterIter = n
	}
}

// WithLogger attaches a zerolog logger for solver diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithBasisOptions forwards options to the basis optimizer used on
// every (re-)optimization during the solve.
func WithBasisOptions(opts ...basis.Option) Option {
	return func(o *Options) {
		o.BasisOpts = append(o.BasisOpts, opts...)
	}
}

// DefaultOptions returns the Options used when no overrides are given.
func DefaultOptions() Options {
	return Options{
		Tolerance:    DefaultTolerance,
		MaxSteps:     DefaultMaxSteps,
		MaxOuterIter: DefaultMaxOuterIter,
		Logger:       zerolog.Nop(),
	}
}
