package equil

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/phaseq/basis"
	"github.com/katalvlaran/phaseq/thermo"
)

// Numeric guards of the inner relaxation; amounts are in kmol.
const (
	// muSkip is written into the chemical-potential blocks of phases
	// whose temperature is outside their validity range. Reactions
	// touching such phases are frozen, so the value never steers a step.
	muSkip = 1.0e30

	// minCurvature floors the reaction curvature D; flatter directions
	// (pure phase transfers) are driven straight to their positivity
	// bound instead of dividing by a vanishing D.
	minCurvature = 1.0e-12

	// vanishFrac of the total moles is the phase-vanish threshold.
	vanishFrac = 1.0e-13

	// collapseFrac of the total moles marks a component as collapsed,
	// triggering a basis re-optimization.
	collapseFrac = 1.0e-12

	// maxBacktrack bounds the damping halvings within one step.
	maxBacktrack = 30
)

// innerSolve relaxes the composition at the current temperature and
// pressure until every unpinned formation reaction satisfies
// |ΔG/RT| < Tolerance. Steps are exact combinations of formation
// reactions, so element totals never move. Returns a *ConvergenceError
// when the step budget runs out.
func (s *Solver) innerSolve() error {
	mix := s.mix

	// Stage 1: component basis for the current mole amounts.
	b, err := basis.Optimize(mix, s.opts.BasisOpts...)
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	s.b = b

	// Stage 2: sync phases and flag the ones outside their temperature
	// validity window; their reactions stay frozen for this relaxation.
	if err := mix.UpdatePhases(); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	np := mix.NPhases()
	for p := 0; p < np; p++ {
		if !mix.TempOK(p) {
			s.opts.Logger.Warn().
				Str("phase", mix.PhaseName(p)).
				Float64("T", mix.Temperature()).
				Msg("temperature outside phase validity range, reactions frozen")
		}
	}

	// Stage 3: record which phases start with moles. Only phases driven
	// to zero during this relaxation freeze; absent ones may grow.
	s.vanished = make([]bool, np)
	hadMoles := make([]bool, np)
	total := mix.TotalMoles()
	for p := 0; p < np; p++ {
		hadMoles[p] = mix.PhaseMoles(p) > vanishFrac*total
	}
	if err := mix.Moles(s.moles); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	// Stage 4: warm start from a cold composition, so that competing
	// absent products (a gas species versus a condensed phase of the
	// same stoichiometry) are filled best-sink-first rather than raced.
	if err := s.estimateComposition(); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	// Stage 5: damped Newton relaxation along the formation reactions.
	reoptOK := true
	for step := 0; step < s.opts.MaxSteps; step++ {
		s.steps++

		res, err := s.affinities(s.moles)
		if err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
		s.lastResidual = res
		s.opts.Logger.Debug().
			Int("step", s.steps).
			Float64("residual", res).
			Msg("inner step")
		if res < s.opts.Tolerance {
			return nil
		}

		// Extent steps δξ = -(ΔG/RT)/D, each capped by its reaction's
		// own positivity room, aggregated into a mole update.
		total = mix.TotalMoles()
		capExtent := math.Max(total, 1.0)
		for k := range s.dn {
			s.dn[k] = 0
		}
		nc := s.b.NComponents
		for j, k := range s.b.Species[nc:] {
			dg := s.dgrt[j]
			if dg == 0 || s.room[j] <= 0 {
				continue
			}
			lim := math.Min(s.room[j], capExtent)
			var dxi float64
			if d := s.curvature(j, k); d < minCurvature {
				dxi = math.Copysign(lim, -dg)
			} else {
				dxi = -dg / d
				if math.Abs(dxi) > lim {
					dxi = math.Copysign(lim, dxi)
				}
			}
			s.dn[k] += dxi
			for c := 0; c < nc; c++ {
				if nu := s.b.ReactionMatrix.At(j, c); nu != 0 {
					s.dn[s.b.Species[c]] -= nu * dxi
				}
			}
		}

		// Global damping: the summed update must keep every amount
		// nonnegative; per-reaction rooms guarantee ω > 0 here.
		omega := 1.0
		for k, d := range s.dn {
			if d < 0 && s.moles[k] > 0 {
				if r := s.moles[k] / -d; r < omega {
					omega = r
				}
			}
		}

		// Backtrack while the residual would rise; absorbed amounts
		// floor at exactly zero.
		for bt := 0; ; bt++ {
			for k := range s.trial {
				v := s.moles[k] + omega*s.dn[k]
				if v < 0 {
					v = 0
				}
				s.trial[k] = v
			}
			if err := mix.SetMoles(s.trial); err != nil {
				return fmt.Errorf("Solve: %w", err)
			}
			resNew, err := s.affinities(s.trial)
			if err != nil {
				return fmt.Errorf("Solve: %w", err)
			}
			if resNew <= res || bt >= maxBacktrack {
				break
			}
			omega /= 2
		}
		copy(s.moles, s.trial)

		// Phase vanishing: a mole-bearing phase driven to numerical
		// zero freezes for the remaining steps.
		totalNow := mix.TotalMoles()
		for p := 0; p < np; p++ {
			if hadMoles[p] && !s.vanished[p] && mix.PhaseMoles(p) <= vanishFrac*totalNow {
				s.vanished[p] = true
				s.opts.Logger.Warn().
					Str("phase", mix.PhaseName(p)).
					Int("step", s.steps).
					Msg("phase driven to zero, reactions frozen")
			}
		}

		// Component collapse: re-optimize the basis when a component's
		// amount falls to the collapse threshold. The extra work counts
		// against the step budget; re-optimization stops once it no
		// longer changes the component set.
		if reoptOK && s.componentCollapsed(totalNow) {
			old := s.b.Components()
			nb, err := basis.Optimize(mix, s.opts.BasisOpts...)
			if err != nil {
				return fmt.Errorf("Solve: %w", err)
			}
			s.b = nb
			s.steps++
			step++
			if sameComponentSet(old, nb.Components()) {
				reoptOK = false
			} else {
				s.opts.Logger.Warn().
					Int("step", s.steps).
					Msg("component collapsed, basis re-optimized")
			}
		}
	}

	return &ConvergenceError{
		Pair:       s.pair,
		Steps:      s.steps,
		OuterIters: s.outer,
		Residual:   s.lastResidual,
	}
}

// estimateComposition warm-starts the relaxation when some strongly
// favorable product is entirely absent: in ascending order of the
// standard-state ΔG°/RT, each favorable formation reaction takes its
// full positivity room, so the best sink for a set of atoms fills
// before any weaker competitor sees them. The moves are reactions, so
// element totals are untouched; consumed components land at exactly
// zero and grow back through the floored logarithms once the
// relaxation runs. Near equilibrium this is a no-op.
func (s *Solver) estimateComposition() error {
	mix := s.mix
	if err := mix.ValidChemPotentials(muSkip, s.mu, true); err != nil {
		return err
	}
	rt := thermo.GasConstant * mix.Temperature()

	type candidate struct {
		j, k int
		dg   float64
	}
	nc := s.b.NComponents
	cands := make([]candidate, 0, len(s.b.Species)-nc)
	for j, k := range s.b.Species[nc:] {
		if !s.reactionActive(j, k) {
			continue
		}
		dg := s.mu[k]
		for c := 0; c < nc; c++ {
			dg -= s.b.ReactionMatrix.At(j, c) * s.mu[s.b.Species[c]]
		}
		dg /= rt
		if dg < -1.0 {
			cands = append(cands, candidate{j: j, k: k, dg: dg})
		}
	}
	cold := false
	for _, c := range cands {
		if s.moles[c.k] <= 0 {
			cold = true

			break
		}
	}
	if !cold {
		return nil
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dg < cands[j].dg })

	for _, c := range cands {
		room := s.directionRoom(c.j, c.k, c.dg, s.moles)
		if room <= 0 || math.IsInf(room, 1) {
			continue
		}
		s.moles[c.k] += room
		for cc := 0; cc < nc; cc++ {
			if nu := s.b.ReactionMatrix.At(c.j, cc); nu != 0 {
				kc := s.b.Species[cc]
				v := s.moles[kc] - nu*room
				if v < 0 {
					v = 0
				}
				s.moles[kc] = v
			}
		}
	}

	return mix.SetMoles(s.moles)
}

// affinities evaluates ΔG/RT for every formation reaction at the mole
// vector n (already stored in the mixture) and the positivity room of
// each reaction in its descent direction. The returned residual is the
// largest |ΔG/RT| over reactions that are active and have room to move;
// inert, frozen and boundary-pinned reactions are excluded.
func (s *Solver) affinities(n []float64) (float64, error) {
	if err := s.mix.ValidChemPotentials(muSkip, s.mu, false); err != nil {
		return 0, err
	}
	rt := thermo.GasConstant * s.mix.Temperature()

	var res float64
	nc := s.b.NComponents
	for j, k := range s.b.Species[nc:] {
		s.dgrt[j] = 0
		s.room[j] = 0
		if !s.reactionActive(j, k) {
			continue
		}

		dg := s.mu[k]
		for c := 0; c < nc; c++ {
			dg -= s.b.ReactionMatrix.At(j, c) * s.mu[s.b.Species[c]]
		}
		dg /= rt
		s.dgrt[j] = dg

		room := s.directionRoom(j, k, dg, n)
		s.room[j] = room
		if room > 0 && math.Abs(dg) > res {
			res = math.Abs(dg)
		}
	}

	return res, nil
}

// reactionActive reports whether reaction j (forming species k) may
// step: it must not be inert and no phase it touches may be frozen.
func (s *Solver) reactionActive(j, k int) bool {
	if s.b.Inert[j] {
		return false
	}
	if s.phaseFrozen(s.mix.SpeciesPhaseIndex(k)) {
		return false
	}
	nc := s.b.NComponents
	for c := 0; c < nc; c++ {
		if s.b.ReactionMatrix.At(j, c) == 0 {
			continue
		}
		if s.phaseFrozen(s.mix.SpeciesPhaseIndex(s.b.Species[c])) {
			return false
		}
	}

	return true
}

// phaseFrozen reports whether phase p may not exchange moles: vanished
// during this relaxation or outside its temperature validity range.
func (s *Solver) phaseFrozen(p int) bool {
	return p >= 0 && (s.vanished[p] || !s.mix.TempOK(p))
}

// directionRoom returns how far reaction j can move in its descent
// direction before a consumed amount reaches zero. Zero room means the
// reaction is pinned at a boundary its drive points out of; such
// reactions satisfy the optimality conditions and drop out of the
// residual.
func (s *Solver) directionRoom(j, k int, dg float64, n []float64) float64 {
	nc := s.b.NComponents
	room := math.Inf(1)
	if dg < 0 {
		// Forward: the product grows, positive-ν components shrink.
		for c := 0; c < nc; c++ {
			if nu := s.b.ReactionMatrix.At(j, c); nu > 0 {
				if r := n[s.b.Species[c]] / nu; r < room {
					room = r
				}
			}
		}
	} else {
		// Reverse: the product shrinks along with negative-ν components.
		room = n[k]
		for c := 0; c < nc; c++ {
			if nu := s.b.ReactionMatrix.At(j, c); nu < 0 {
				if r := n[s.b.Species[c]] / -nu; r < room {
					room = r
				}
			}
		}
	}

	return room
}

// curvature is the ideal-solution diagonal d(ΔG_j/RT)/dξ_j: per phase,
// Σ_k s_k²/n_k − (Σ_k s_k)²/N_p over the reaction's stoichiometric
// vector s. Single-species phases cancel exactly; amounts are floored
// so creating a currently absent species stays finite.
func (s *Solver) curvature(j, k int) float64 {
	for p := range s.sumS {
		s.sumS[p] = 0
	}

	d := 1.0 / math.Max(s.moles[k], thermo.Tiny)
	s.sumS[s.mix.SpeciesPhaseIndex(k)] += 1.0
	nc := s.b.NComponents
	for c := 0; c < nc; c++ {
		nu := s.b.ReactionMatrix.At(j, c)
		if nu == 0 {
			continue
		}
		kc := s.b.Species[c]
		d += nu * nu / math.Max(s.moles[kc], thermo.Tiny)
		s.sumS[s.mix.SpeciesPhaseIndex(kc)] -= nu
	}
	for p, sum := range s.sumS {
		if sum != 0 {
			d -= sum * sum / math.Max(s.mix.PhaseMoles(p), thermo.Tiny)
		}
	}
	if d < 0 {
		d = 0
	}

	return d
}

// componentCollapsed reports whether any component's amount has fallen
// to the collapse threshold.
func (s *Solver) componentCollapsed(total float64) bool {
	threshold := collapseFrac * math.Max(total, thermo.Tiny)
	for c := 0; c < s.b.NComponents; c++ {
		if s.moles[s.b.Species[c]] < threshold {
			return true
		}
	}

	return false
}

// sameComponentSet reports whether two component index slices hold the
// same species, slot order ignored.
func sameComponentSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}
