package multiphase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phaseq/thermo"
)

// Mixture is a non-owning collection of phases sharing one temperature
// and pressure. Registered phases must outlive the mixture; the mixture
// reads and writes their state through the thermo.Phase contract but
// never copies or frees them.
//
// Lifecycle: NewMixture → AddPhase* → Init (seals) → state and mole
// operations. Init builds the immutable global tables: the unified
// element list, the species name table with contiguous per-phase index
// blocks, and the element × species atom matrix.
type Mixture struct {
	phases []thermo.Phase // registered handles, registration order
	moles  []float64      // per-phase mole totals [kmol]
	start  []int          // global species offset per phase
	nsp    int            // total species count (valid after Init)

	sealed bool

	temp  float64 // shared temperature [K]
	press float64 // shared pressure [Pa]

	// Global tables, built once by Init.
	elemNames []string
	elemIdx   map[string]int
	atomNum   []int
	spNames   []string
	spPhase   []int      // global species index → phase index
	spCharge  []float64  // per-species elementary charge
	atoms     *mat.Dense // nElements × nSpecies atom counts

	minTemp, maxTemp float64

	x      []float64 // global mole fractions; each phase block sums to 1
	tempOK []bool    // per-phase temperature-validity flags

	abund      []float64 // element-abundance cache [kmol]
	abundDirty bool
}

// NewMixture returns an empty mixture at the reference state
// (thermo.RefTemp, thermo.OneAtm).
func NewMixture() *Mixture {
	return &Mixture{
		temp:  thermo.RefTemp,
		press: thermo.OneAtm,
	}
}

// AddPhase registers a phase with its initial mole total [kmol].
// The mixture stores the handle as-is; the caller keeps ownership.
//
// Errors: ErrSealed after Init, ErrNilPhase, ErrNegativeMoles,
// thermo.ErrNoSpecies for an empty phase.
func (m *Mixture) AddPhase(p thermo.Phase, moles float64) error {
	if m.sealed {
		return fmt.Errorf("AddPhase: %w", ErrSealed)
	}
	if err := checkPhase(p, moles); err != nil {
		return fmt.Errorf("AddPhase: %w", err)
	}

	m.phases = append(m.phases, p)
	m.moles = append(m.moles, moles)

	return nil
}

// AddPhases registers several phases at once. The call is atomic: every
// entry is validated before any is appended, so a failed call leaves the
// mixture unchanged.
//
// Errors: ErrSealed, ErrLengthMismatch, plus the AddPhase set wrapped
// with the offending position.
func (m *Mixture) AddPhases(ps []thermo.Phase, moles []float64) error {
	if m.sealed {
		return fmt.Errorf("AddPhases: %w", ErrSealed)
	}
	if len(ps) != len(moles) {
		return fmt.Errorf("AddPhases: %d phases, %d mole totals: %w",
			len(ps), len(moles), ErrLengthMismatch)
	}
	for i, p := range ps {
		if err := checkPhase(p, moles[i]); err != nil {
			return fmt.Errorf("AddPhases[%d]: %w", i, err)
		}
	}

	m.phases = append(m.phases, ps...)
	m.moles = append(m.moles, moles...)

	return nil
}

// checkPhase validates one registration candidate.
func checkPhase(p thermo.Phase, moles float64) error {
	if p == nil {
		return ErrNilPhase
	}
	if p.NSpecies() < 1 {
		return fmt.Errorf("phase %q: %w", p.Name(), thermo.ErrNoSpecies)
	}
	if moles < 0 || math.IsNaN(moles) || math.IsInf(moles, 0) {
		return fmt.Errorf("phase %q: moles = %g: %w", p.Name(), moles, ErrNegativeMoles)
	}

	return nil
}

// Init seals the mixture and builds the global tables. Calling Init on
// an already-initialized mixture is a no-op returning nil.
//
// Errors: ErrNoPhases; phase read errors wrapped.
func (m *Mixture) Init() error {
	if m.sealed {
		return nil
	}
	if len(m.phases) == 0 {
		return fmt.Errorf("Init: %w", ErrNoPhases)
	}

	// Stage 1: species table with contiguous per-phase index blocks.
	m.start = make([]int, len(m.phases))
	m.nsp = 0
	for p, ph := range m.phases {
		m.start[p] = m.nsp
		m.nsp += ph.NSpecies()
	}
	m.spNames = make([]string, 0, m.nsp)
	m.spPhase = make([]int, 0, m.nsp)
	m.spCharge = make([]float64, 0, m.nsp)
	for p, ph := range m.phases {
		for _, sp := range ph.Species() {
			m.spNames = append(m.spNames, sp.Name)
			m.spPhase = append(m.spPhase, p)
			m.spCharge = append(m.spCharge, sp.Charge)
		}
	}

	// Stage 2: unify elements by name. First declaration wins; later
	// phases reuse the existing global index.
	m.elemIdx = make(map[string]int)
	for _, ph := range m.phases {
		for _, el := range ph.Elements() {
			if _, ok := m.elemIdx[el.Name]; ok {
				continue
			}
			m.elemIdx[el.Name] = len(m.elemNames)
			m.elemNames = append(m.elemNames, el.Name)
			m.atomNum = append(m.atomNum, el.AtomicNumber)
		}
	}

	// Stage 3: atom matrix, one column per global species.
	m.atoms = mat.NewDense(len(m.elemNames), m.nsp, nil)
	k := 0
	for _, ph := range m.phases {
		for _, sp := range ph.Species() {
			for name, count := range sp.Atoms {
				m.atoms.Set(m.elemIdx[name], k, count)
			}
			k++
		}
	}

	// Stage 4: validity range as the intersection over solution phases.
	// Single-species stoichiometric phases never constrain it.
	m.minTemp, m.maxTemp = noLimitMinTemp, noLimitMaxTemp
	for _, ph := range m.phases {
		if ph.NSpecies() == 1 {
			continue
		}
		m.minTemp = math.Max(m.minTemp, ph.MinTemp())
		m.maxTemp = math.Min(m.maxTemp, ph.MaxTemp())
	}

	// Stage 5: seed the global composition from the phases themselves.
	m.x = make([]float64, m.nsp)
	m.tempOK = make([]bool, len(m.phases))
	m.abund = make([]float64, len(m.elemNames))
	m.abundDirty = true
	m.sealed = true
	if err := m.UpdateMoleFractions(); err != nil {
		m.sealed = false
		return fmt.Errorf("Init: %w", err)
	}
	m.refreshTempOK()

	return nil
}

// Initialized reports whether Init has sealed the mixture.
func (m *Mixture) Initialized() bool { return m.sealed }

// end returns one past the last global species index of phase p.
func (m *Mixture) end(p int) int {
	return m.start[p] + m.phases[p].NSpecies()
}
