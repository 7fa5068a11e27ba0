package multiphase

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/phaseq/thermo"
)

// TotalMoles returns the sum of all phase mole totals [kmol].
func (m *Mixture) TotalMoles() float64 {
	var sum float64
	for _, v := range m.moles {
		sum += v
	}

	return sum
}

// PhaseMoles returns the mole total of phase n [kmol], or 0 when n is
// out of range.
func (m *Mixture) PhaseMoles(n int) float64 {
	if n < 0 || n >= len(m.moles) {
		return 0
	}

	return m.moles[n]
}

// SetPhaseMoles sets the mole total of phase n [kmol]. The phase
// composition is untouched.
//
// Errors: ErrNotInitialized, ErrPhaseIndex, ErrNegativeMoles.
func (m *Mixture) SetPhaseMoles(n int, v float64) error {
	if !m.sealed {
		return fmt.Errorf("SetPhaseMoles(%d): %w", n, ErrNotInitialized)
	}
	if n < 0 || n >= len(m.moles) {
		return fmt.Errorf("SetPhaseMoles(%d): %w", n, ErrPhaseIndex)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("SetPhaseMoles(%d): n = %g: %w", n, v, ErrNegativeMoles)
	}

	m.moles[n] = v
	m.abundDirty = true

	return nil
}

// SpeciesMoles returns the moles of global species k [kmol], the product
// of its mole fraction and its phase's mole total. Zero when k is out of
// range.
func (m *Mixture) SpeciesMoles(k int) float64 {
	if k < 0 || k >= m.nsp {
		return 0
	}

	return m.x[k] * m.moles[m.spPhase[k]]
}

// Moles writes the moles of every global species into dst [kmol].
//
// Errors: ErrNotInitialized, ErrLengthMismatch.
func (m *Mixture) Moles(dst []float64) error {
	if !m.sealed {
		return fmt.Errorf("Moles: %w", ErrNotInitialized)
	}
	if len(dst) != m.nsp {
		return fmt.Errorf("Moles: len = %d, want %d: %w", len(dst), m.nsp, ErrLengthMismatch)
	}
	for p := range m.phases {
		np := m.moles[p]
		for k := m.start[p]; k < m.end(p); k++ {
			dst[k] = m.x[k] * np
		}
	}

	return nil
}

// SetMoles sets every species amount from the global vector n [kmol].
// Phase totals become the block sums; blocks with a positive total are
// renormalized into mole fractions, while a zero-total block keeps its
// previous composition (the phase is simply absent). Phases are
// resynchronized before returning.
//
// Errors: ErrNotInitialized, ErrLengthMismatch, ErrNegativeMoles; phase
// SetState errors wrapped.
func (m *Mixture) SetMoles(n []float64) error {
	if !m.sealed {
		return fmt.Errorf("SetMoles: %w", ErrNotInitialized)
	}
	if len(n) != m.nsp {
		return fmt.Errorf("SetMoles: len = %d, want %d: %w", len(n), m.nsp, ErrLengthMismatch)
	}
	for k, v := range n {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("SetMoles: species %q: n = %g: %w", m.spNames[k], v, ErrNegativeMoles)
		}
	}

	for p := range m.phases {
		blk := n[m.start[p]:m.end(p)]
		var tot float64
		for _, v := range blk {
			tot += v
		}
		m.moles[p] = tot
		if tot > 0 {
			x := m.x[m.start[p]:m.end(p)]
			for i, v := range blk {
				x[i] = v / tot
			}
		}
	}
	m.abundDirty = true

	return m.UpdatePhases()
}

// SetMolesByName sets species amounts from a name → kmol map. Every
// species whose name appears in the map receives that amount (names need
// not be unique across phases, so one entry may set several species);
// every species not named is set to zero.
//
// Errors: ErrNotInitialized, ErrSpeciesNotFound for a map key matching
// no species, plus the SetMoles set.
func (m *Mixture) SetMolesByName(byName map[string]float64) error {
	if !m.sealed {
		return fmt.Errorf("SetMolesByName: %w", ErrNotInitialized)
	}

	n := make([]float64, m.nsp)
	seen := make(map[string]bool, len(byName))
	for k, name := range m.spNames {
		if v, ok := byName[name]; ok {
			n[k] = v
			seen[name] = true
		}
	}

	// Deterministic miss reporting: smallest unknown name first.
	if len(seen) != len(byName) {
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !seen[name] {
				return fmt.Errorf("SetMolesByName: %q: %w", name, ErrSpeciesNotFound)
			}
		}
	}

	return m.SetMoles(n)
}

// MoleFraction returns the mole fraction of global species k within its
// phase, or 0 when k is out of range.
func (m *Mixture) MoleFraction(k int) float64 {
	if k < 0 || k >= m.nsp {
		return 0
	}

	return m.x[k]
}

// MoleFractions writes the global mole-fraction vector into dst.
//
// Errors: ErrNotInitialized, ErrLengthMismatch.
func (m *Mixture) MoleFractions(dst []float64) error {
	if !m.sealed {
		return fmt.Errorf("MoleFractions: %w", ErrNotInitialized)
	}
	if len(dst) != m.nsp {
		return fmt.Errorf("MoleFractions: len = %d, want %d: %w", len(dst), m.nsp, ErrLengthMismatch)
	}
	copy(dst, m.x)

	return nil
}

// SetPhaseMoleFractions replaces the composition of phase n. The input
// is renormalized to sum to one; the phase mole total is untouched.
// Phases are resynchronized before returning.
//
// Errors: ErrNotInitialized, ErrPhaseIndex, ErrLengthMismatch,
// thermo.ErrNegativeFraction, thermo.ErrZeroComposition.
func (m *Mixture) SetPhaseMoleFractions(n int, x []float64) error {
	if !m.sealed {
		return fmt.Errorf("SetPhaseMoleFractions(%d): %w", n, ErrNotInitialized)
	}
	if n < 0 || n >= len(m.phases) {
		return fmt.Errorf("SetPhaseMoleFractions(%d): %w", n, ErrPhaseIndex)
	}
	if len(x) != m.phases[n].NSpecies() {
		return fmt.Errorf("SetPhaseMoleFractions(%d): len = %d, want %d: %w",
			n, len(x), m.phases[n].NSpecies(), ErrLengthMismatch)
	}
	var sum float64
	for i, v := range x {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("SetPhaseMoleFractions(%d): x[%d] = %g: %w",
				n, i, v, thermo.ErrNegativeFraction)
		}
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("SetPhaseMoleFractions(%d): %w", n, thermo.ErrZeroComposition)
	}

	blk := m.x[m.start[n]:m.end(n)]
	for i, v := range x {
		blk[i] = v / sum
	}
	m.abundDirty = true

	return m.UpdatePhases()
}

// ElementMoles returns the total moles of global element el across all
// phases [kmol], or 0 when el is out of range.
func (m *Mixture) ElementMoles(el int) float64 {
	if el < 0 || el >= len(m.abund) {
		return 0
	}
	m.ensureAbundances()

	return m.abund[el]
}

// ElementAbundances writes the per-element mole totals into dst [kmol].
//
// Errors: ErrNotInitialized, ErrLengthMismatch.
func (m *Mixture) ElementAbundances(dst []float64) error {
	if !m.sealed {
		return fmt.Errorf("ElementAbundances: %w", ErrNotInitialized)
	}
	if len(dst) != len(m.abund) {
		return fmt.Errorf("ElementAbundances: len = %d, want %d: %w",
			len(dst), len(m.abund), ErrLengthMismatch)
	}
	m.ensureAbundances()
	copy(dst, m.abund)

	return nil
}

// ensureAbundances recomputes the element-abundance cache when a mole
// mutator has invalidated it.
func (m *Mixture) ensureAbundances() {
	if !m.abundDirty {
		return
	}

	for el := range m.abund {
		m.abund[el] = 0
	}
	for p := range m.phases {
		np := m.moles[p]
		if np <= 0 {
			continue
		}
		for k := m.start[p]; k < m.end(p); k++ {
			nk := m.x[k] * np
			if nk == 0 {
				continue
			}
			for el := range m.abund {
				m.abund[el] += m.atoms.At(el, k) * nk
			}
		}
	}
	m.abundDirty = false
}

// PhaseCharge returns the electric charge of phase n [C], or 0 when n
// is out of range or the mixture is not initialized.
func (m *Mixture) PhaseCharge(n int) float64 {
	if !m.sealed || n < 0 || n >= len(m.phases) {
		return 0
	}

	var q float64
	for k := m.start[n]; k < m.end(n); k++ {
		q += m.spCharge[k] * m.x[k]
	}

	return thermo.Faraday * q * m.moles[n]
}

// Charge returns the total electric charge of the mixture [C].
func (m *Mixture) Charge() float64 {
	var q float64
	for n := range m.phases {
		q += m.PhaseCharge(n)
	}

	return q
}
