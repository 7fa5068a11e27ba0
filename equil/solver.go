package equil

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phaseq/basis"
	"github.com/katalvlaran/phaseq/multiphase"
	"github.com/katalvlaran/phaseq/thermo"
)

// Solver relaxes one mixture to chemical equilibrium for one property
// pair. It is not safe for concurrent use; its post-mortem accessors
// (Status, Steps, OuterIterations, LastResidual) describe the most
// recent Solve call.
type Solver struct {
	mix  *multiphase.Mixture
	pair StatePair
	opts Options

	status       Status
	steps        int
	outer        int
	lastResidual float64

	// Scratch buffers sized on Solve, reused across steps.
	b        *basis.Basis
	mu       []float64
	moles    []float64
	trial    []float64
	dn       []float64
	dgrt     []float64
	room     []float64
	sumS     []float64
	vanished []bool
}

// NewSolver prepares an equilibrium solve of mix holding pair fixed.
// Invalid option values panic inside their setters; mixture validation
// is deferred to Solve.
func NewSolver(mix *multiphase.Mixture, pair StatePair, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{mix: mix, pair: pair, opts: o, status: NotStarted}
}

// Equilibrate drives mix to chemical equilibrium holding pair fixed and
// returns the total Gibbs function [J] of the converged state. It is a
// convenience over NewSolver and Solve for callers that do not need the
// post-mortem accessors.
func Equilibrate(mix *multiphase.Mixture, pair StatePair, opts ...Option) (float64, error) {
	return NewSolver(mix, pair, opts...).Solve()
}

// Status reports where the solver is in its lifecycle.
func (s *Solver) Status() Status { return s.status }

// Steps returns the total number of inner steps taken by the most
// recent Solve, re-optimizations included.
func (s *Solver) Steps() int { return s.steps }

// OuterIterations returns the number of completed outer iterations of
// the most recent Solve; TP solves leave it at zero.
func (s *Solver) OuterIterations() int { return s.outer }

// LastResidual returns the most recent convergence-test value: max
// |ΔG/RT| after an inner step, the relative property mismatch after an
// outer iteration.
func (s *Solver) LastResidual() float64 { return s.lastResidual }

// Solve drives the mixture to equilibrium and returns the total Gibbs
// function [J] of the final state. On an exhausted budget the error is
// a *ConvergenceError (errors.Is-able to ErrNotConverged) and the
// mixture is left at the last iterate; basis and mixture errors
// propagate unchanged.
//
// Errors: ErrNilMixture, multiphase.ErrNotInitialized, ErrBadPair,
// ErrNotConverged, basis.ErrDegenerateBasis.
func (s *Solver) Solve() (float64, error) {
	// Stage 0: validation and counter reset.
	if s.mix == nil {
		s.status = Failed

		return 0, fmt.Errorf("Solve: %w", ErrNilMixture)
	}
	if !s.mix.Initialized() {
		s.status = Failed

		return 0, fmt.Errorf("Solve: %w", multiphase.ErrNotInitialized)
	}
	s.steps, s.outer, s.lastResidual = 0, 0, 0

	nsp := s.mix.NSpecies()
	s.mu = make([]float64, nsp)
	s.moles = make([]float64, nsp)
	s.trial = make([]float64, nsp)
	s.dn = make([]float64, nsp)
	s.dgrt = make([]float64, nsp)
	s.room = make([]float64, nsp)
	s.sumS = make([]float64, s.mix.NPhases())

	// Stage 1: dispatch on the fixed pair.
	var err error
	switch s.pair {
	case TP:
		s.status = InnerIterating
		err = s.innerSolve()
	case HP, SP:
		err = s.solveOuterT()
	case TV:
		err = s.solveTV()
	default:
		s.status = Failed

		return 0, fmt.Errorf("Solve: pair %d: %w", int(s.pair), ErrBadPair)
	}
	if err != nil {
		s.status = Failed

		return 0, err
	}

	// Stage 2: report the Gibbs function of the converged state.
	g, err := s.mix.Gibbs()
	if err != nil {
		s.status = Failed

		return 0, fmt.Errorf("Solve: %w", err)
	}
	s.status = Converged
	s.opts.Logger.Info().
		Str("pair", s.pair.String()).
		Int("steps", s.steps).
		Int("outer", s.outer).
		Float64("gibbs", g).
		Msg("equilibrium reached")

	return g, nil
}

// solveOuterT holds pressure and either enthalpy (HP) or entropy (SP)
// fixed. Each outer iteration re-equilibrates the composition at the
// trial temperature, then moves T toward the property target by a
// bracketed, damped Newton step with the heat capacity as the slope.
func (s *Solver) solveOuterT() error {
	mix := s.mix

	// Stage 1: the conserved target is the property of the entry state.
	target, err := s.fixedProperty()
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	scale := math.Max(math.Abs(target), 1.0)

	// Stage 2: bracket from the phase validity window. Equilibrium H
	// and S are monotone in T, so every iterate tightens the bracket.
	// Disjoint phase windows leave no common range; widen around the
	// current state instead.
	tlow, thigh := mix.MinTemp(), mix.MaxTemp()
	if tlow >= thigh {
		t0 := mix.Temperature()
		tlow = 0.5 * math.Min(tlow, t0)
		thigh = 2.0 * math.Max(thigh, t0)
	}

	// Stage 3: outer iteration.
	for it := 0; it < s.opts.MaxOuterIter; it++ {
		s.outer++

		s.status = InnerIterating
		if err := s.innerSolve(); err != nil {
			return err
		}
		s.status = OuterIterating

		now, err := s.fixedProperty()
		if err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
		t := mix.Temperature()
		if now < target {
			tlow = math.Max(tlow, t)
		} else {
			thigh = math.Min(thigh, t)
		}

		relErr := math.Abs(now-target) / scale
		s.lastResidual = relErr
		s.opts.Logger.Debug().
			Int("outer", s.outer).
			Float64("T", t).
			Float64("residual", relErr).
			Msg("outer iteration")
		if relErr < s.opts.Tolerance {
			return nil
		}

		// Newton step on T; bisect when the slope is unusable.
		cp, err := mix.Cp()
		if err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
		var dt float64
		if cp > 0 && !math.IsInf(cp, 0) {
			if s.pair == HP {
				dt = (target - now) / cp
			} else {
				dt = (target - now) * t / cp
			}
		}
		dtmax := 0.5 * (thigh - tlow)
		if dt == 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
			dt = 0.5*(tlow+thigh) - t
		} else if math.Abs(dt) > dtmax {
			dt = math.Copysign(dtmax, dt)
		}
		tnew := t + dt
		if tnew <= tlow || tnew >= thigh {
			tnew = 0.5 * (tlow + thigh)
		}
		if err := mix.SetTemperature(tnew); err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
	}

	return &ConvergenceError{
		Pair:       s.pair,
		Steps:      s.steps,
		OuterIters: s.outer,
		Residual:   s.lastResidual,
	}
}

// solveTV holds temperature and volume fixed, adjusting pressure with
// the ideal-mixture slope dV/dP ≈ -V/P. The step is clamped to half the
// current pressure so the iterate stays positive.
func (s *Solver) solveTV() error {
	mix := s.mix

	target, err := s.fixedProperty()
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	scale := math.Max(math.Abs(target), thermo.Tiny)

	for it := 0; it < s.opts.MaxOuterIter; it++ {
		s.outer++

		s.status = InnerIterating
		if err := s.innerSolve(); err != nil {
			return err
		}
		s.status = OuterIterating

		now, err := mix.Volume()
		if err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
		relErr := math.Abs(now-target) / scale
		s.lastResidual = relErr
		s.opts.Logger.Debug().
			Int("outer", s.outer).
			Float64("P", mix.Pressure()).
			Float64("residual", relErr).
			Msg("outer iteration")
		if relErr < s.opts.Tolerance {
			return nil
		}

		p := mix.Pressure()
		var dp float64
		if now > 0 {
			dp = (now - target) * p / now
		}
		if limit := 0.5 * p; math.Abs(dp) > limit {
			dp = math.Copysign(limit, dp)
		}
		if dp == 0 {
			// A volume-free mixture cannot be steered toward the target.
			break
		}
		if err := mix.SetPressure(p + dp); err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
	}

	return &ConvergenceError{
		Pair:       s.pair,
		Steps:      s.steps,
		OuterIters: s.outer,
		Residual:   s.lastResidual,
	}
}

// fixedProperty reads the conserved property of the pair: enthalpy for
// HP, entropy for SP, volume for TV.
func (s *Solver) fixedProperty() (float64, error) {
	switch s.pair {
	case HP:
		return s.mix.Enthalpy()
	case SP:
		return s.mix.Entropy()
	case TV:
		return s.mix.Volume()
	default:
		return 0, fmt.Errorf("pair %v: %w", s.pair, ErrBadPair)
	}
}
