package multiphase

import (
	"fmt"
)

// Extensive mixture properties. Each accessor synchronizes the phases
// first (one UpdatePhases call), then sums phase moles × molar property;
// zero-mole phases contribute nothing. Units: Volume m³, Enthalpy and
// Gibbs J, Entropy and Cp J/K.

// Volume returns the total mixture volume [m³].
func (m *Mixture) Volume() (float64, error) {
	return m.sumExtensive("Volume", func(p int) float64 {
		return m.phases[p].MolarVolume()
	})
}

// Enthalpy returns the total mixture enthalpy [J].
func (m *Mixture) Enthalpy() (float64, error) {
	return m.sumExtensive("Enthalpy", func(p int) float64 {
		return m.phases[p].EnthalpyMolar()
	})
}

// Entropy returns the total mixture entropy [J/K].
func (m *Mixture) Entropy() (float64, error) {
	return m.sumExtensive("Entropy", func(p int) float64 {
		return m.phases[p].EntropyMolar()
	})
}

// Gibbs returns the total Gibbs function of the mixture [J]. This is
// the quantity the equilibrium solver minimizes at fixed T and P.
func (m *Mixture) Gibbs() (float64, error) {
	return m.sumExtensive("Gibbs", func(p int) float64 {
		return m.phases[p].GibbsMolar()
	})
}

// Cp returns the total constant-pressure heat capacity [J/K].
func (m *Mixture) Cp() (float64, error) {
	return m.sumExtensive("Cp", func(p int) float64 {
		return m.phases[p].CpMolar()
	})
}

// sumExtensive synchronizes the phases and folds a per-phase molar
// property into an extensive total.
func (m *Mixture) sumExtensive(op string, molar func(p int) float64) (float64, error) {
	if err := m.UpdatePhases(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var sum float64
	for p := range m.phases {
		if m.moles[p] == 0 {
			continue
		}
		sum += m.moles[p] * molar(p)
	}

	return sum, nil
}

// ChemPotentials writes the chemical potential of every global species
// into mu [J/kmol], phase state synchronized first.
//
// Errors: ErrNotInitialized, ErrLengthMismatch; phase errors wrapped.
func (m *Mixture) ChemPotentials(mu []float64) error {
	if !m.sealed {
		return fmt.Errorf("ChemPotentials: %w", ErrNotInitialized)
	}
	if len(mu) != m.nsp {
		return fmt.Errorf("ChemPotentials: len = %d, want %d: %w", len(mu), m.nsp, ErrLengthMismatch)
	}
	if err := m.UpdatePhases(); err != nil {
		return fmt.Errorf("ChemPotentials: %w", err)
	}

	for p, ph := range m.phases {
		if err := ph.ChemPotentials(mu[m.start[p]:m.end(p)]); err != nil {
			return fmt.Errorf("ChemPotentials: phase %q: %w", ph.Name(), err)
		}
	}

	return nil
}

// ValidChemPotentials writes chemical potentials into mu [J/kmol] for
// every phase whose TempOK flag holds, and the caller-chosen skip value
// for every species of a flagged phase. With standard true the
// standard-state potentials are written instead of the full ones.
// Solvers pass a large positive skip so flagged phases never look
// favorable.
//
// Errors: ErrNotInitialized, ErrLengthMismatch; phase errors wrapped.
func (m *Mixture) ValidChemPotentials(skip float64, mu []float64, standard bool) error {
	if !m.sealed {
		return fmt.Errorf("ValidChemPotentials: %w", ErrNotInitialized)
	}
	if len(mu) != m.nsp {
		return fmt.Errorf("ValidChemPotentials: len = %d, want %d: %w", len(mu), m.nsp, ErrLengthMismatch)
	}
	if err := m.UpdatePhases(); err != nil {
		return fmt.Errorf("ValidChemPotentials: %w", err)
	}

	for p, ph := range m.phases {
		blk := mu[m.start[p]:m.end(p)]
		if !m.tempOK[p] {
			for i := range blk {
				blk[i] = skip
			}
			continue
		}

		var err error
		if standard {
			err = ph.StandardChemPotentials(blk)
		} else {
			err = ph.ChemPotentials(blk)
		}
		if err != nil {
			return fmt.Errorf("ValidChemPotentials: phase %q: %w", ph.Name(), err)
		}
	}

	return nil
}
