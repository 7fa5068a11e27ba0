package multiphase

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phaseq/thermo"
)

// NPhases returns the number of registered phases.
func (m *Mixture) NPhases() int { return len(m.phases) }

// NSpecies returns the total species count. Zero before Init.
func (m *Mixture) NSpecies() int { return m.nsp }

// NElements returns the unified element count. Zero before Init.
func (m *Mixture) NElements() int { return len(m.elemNames) }

// Phase returns the n-th registered phase after pushing the mixture
// state into every phase, so the handle reflects the mixture's T, P and
// composition. Any phase-local state set behind the mixture's back is
// overwritten by this synchronization.
//
// Errors: ErrNotInitialized, ErrPhaseIndex, phase SetState errors.
func (m *Mixture) Phase(n int) (thermo.Phase, error) {
	if !m.sealed {
		return nil, fmt.Errorf("Phase(%d): %w", n, ErrNotInitialized)
	}
	if n < 0 || n >= len(m.phases) {
		return nil, fmt.Errorf("Phase(%d): %w", n, ErrPhaseIndex)
	}
	if err := m.UpdatePhases(); err != nil {
		return nil, fmt.Errorf("Phase(%d): %w", n, err)
	}

	return m.phases[n], nil
}

// PhaseName returns the name of phase n, or "" when n is out of range.
func (m *Mixture) PhaseName(n int) string {
	if n < 0 || n >= len(m.phases) {
		return ""
	}

	return m.phases[n].Name()
}

// PhaseIndex returns the index of the first phase with the given name,
// or -1 when no phase matches.
func (m *Mixture) PhaseIndex(name string) int {
	for p, ph := range m.phases {
		if ph.Name() == name {
			return p
		}
	}

	return -1
}

// ElementName returns the name of global element el, or "" when el is
// out of range.
func (m *Mixture) ElementName(el int) string {
	if el < 0 || el >= len(m.elemNames) {
		return ""
	}

	return m.elemNames[el]
}

// ElementIndex returns the global index of the named element, or -1
// when the mixture declares no such element. Valid after Init.
func (m *Mixture) ElementIndex(name string) int {
	if el, ok := m.elemIdx[name]; ok {
		return el
	}

	return -1
}

// AtomicNumber returns the atomic number of global element el, or -1
// when el is out of range. The electron placeholder element "E" carries
// atomic number 0.
func (m *Mixture) AtomicNumber(el int) int {
	if el < 0 || el >= len(m.atomNum) {
		return -1
	}

	return m.atomNum[el]
}

// SpeciesName returns the name of global species k, or "" when k is out
// of range. Species names are not guaranteed unique across phases.
func (m *Mixture) SpeciesName(k int) string {
	if k < 0 || k >= m.nsp {
		return ""
	}

	return m.spNames[k]
}

// SpeciesIndexByName returns the smallest global index of a species with
// the given name, or -1 when no species matches.
func (m *Mixture) SpeciesIndexByName(name string) int {
	for k, n := range m.spNames {
		if n == name {
			return k
		}
	}

	return -1
}

// SpeciesIndex maps the phase-local species index k of phase p to the
// global index, or -1 when either index is out of range.
func (m *Mixture) SpeciesIndex(k, p int) int {
	if !m.sealed || p < 0 || p >= len(m.phases) {
		return -1
	}
	if k < 0 || k >= m.phases[p].NSpecies() {
		return -1
	}

	return m.start[p] + k
}

// SpeciesPhaseIndex returns the phase owning global species k, or -1
// when k is out of range.
func (m *Mixture) SpeciesPhaseIndex(k int) int {
	if k < 0 || k >= m.nsp {
		return -1
	}

	return m.spPhase[k]
}

// SolutionSpecies reports whether global species k belongs to a phase
// with more than one species. False for out-of-range k.
func (m *Mixture) SolutionSpecies(k int) bool {
	p := m.SpeciesPhaseIndex(k)

	return p >= 0 && m.phases[p].NSpecies() > 1
}

// NAtoms returns the number of atoms of global element el in global
// species k, or 0 when either index is out of range.
func (m *Mixture) NAtoms(k, el int) float64 {
	if k < 0 || k >= m.nsp || el < 0 || el >= len(m.elemNames) {
		return 0
	}

	return m.atoms.At(el, k)
}

// AtomMatrix returns a copy of the nElements × nSpecies atom matrix,
// or nil before Init. Entry (el, k) is the atom count of element el in
// species k.
func (m *Mixture) AtomMatrix() *mat.Dense {
	if !m.sealed {
		return nil
	}

	return mat.DenseCopyOf(m.atoms)
}
