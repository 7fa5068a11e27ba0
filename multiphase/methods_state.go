package multiphase

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phaseq/thermo"
)

// Temperature returns the shared mixture temperature [K].
func (m *Mixture) Temperature() float64 { return m.temp }

// Pressure returns the shared mixture pressure [Pa].
func (m *Mixture) Pressure() float64 { return m.press }

// MinTemp returns the lower bound of the mixture validity range [K]:
// the largest MinTemp over phases with more than one species. Valid
// after Init.
func (m *Mixture) MinTemp() float64 { return m.minTemp }

// MaxTemp returns the upper bound of the mixture validity range [K]:
// the smallest MaxTemp over phases with more than one species. Valid
// after Init.
func (m *Mixture) MaxTemp() float64 { return m.maxTemp }

// TempOK reports whether the mixture temperature lies inside phase n's
// own validity range. False for an out-of-range index or before Init.
// The flag is advisory: state synchronization proceeds regardless, and
// ValidChemPotentials substitutes a caller-chosen value for flagged
// phases.
func (m *Mixture) TempOK(n int) bool {
	if n < 0 || n >= len(m.tempOK) {
		return false
	}

	return m.tempOK[n]
}

// SetTemperature sets the shared temperature [K] and pushes the state
// into every phase. Values outside the mixture validity range are
// accepted; affected phases are flagged via TempOK instead.
//
// Errors: thermo.ErrBadTemperature for a non-positive or non-finite
// value; phase SetState errors wrapped.
func (m *Mixture) SetTemperature(temp float64) error {
	if temp <= 0 || math.IsNaN(temp) || math.IsInf(temp, 0) {
		return fmt.Errorf("SetTemperature: T = %g: %w", temp, thermo.ErrBadTemperature)
	}

	m.temp = temp
	if !m.sealed {
		return nil
	}

	return m.UpdatePhases()
}

// SetPressure sets the shared pressure [Pa] and pushes the state into
// every phase.
//
// Errors: thermo.ErrBadPressure for a non-positive or non-finite value;
// phase SetState errors wrapped.
func (m *Mixture) SetPressure(press float64) error {
	if press <= 0 || math.IsNaN(press) || math.IsInf(press, 0) {
		return fmt.Errorf("SetPressure: P = %g: %w", press, thermo.ErrBadPressure)
	}

	m.press = press
	if !m.sealed {
		return nil
	}

	return m.UpdatePhases()
}

// UpdatePhases pushes the mixture temperature, pressure and each phase's
// block of the global mole-fraction vector into the phase objects, then
// refreshes the TempOK flags. Idempotent: pushing the same state twice
// changes nothing.
//
// Errors: ErrNotInitialized; phase SetState errors wrapped with the
// phase name.
func (m *Mixture) UpdatePhases() error {
	if !m.sealed {
		return fmt.Errorf("UpdatePhases: %w", ErrNotInitialized)
	}

	for p, ph := range m.phases {
		blk := m.x[m.start[p]:m.end(p)]
		if err := ph.SetState(m.temp, m.press, blk); err != nil {
			return fmt.Errorf("UpdatePhases: phase %q: %w", ph.Name(), err)
		}
	}
	m.refreshTempOK()

	return nil
}

// UpdateMoleFractions pulls each phase's composition back into the
// global mole-fraction vector, renormalizing every block to sum to one.
// Phase mole totals are untouched. Idempotent.
//
// Errors: ErrNotInitialized; phase read errors wrapped with the phase
// name.
func (m *Mixture) UpdateMoleFractions() error {
	if !m.sealed {
		return fmt.Errorf("UpdateMoleFractions: %w", ErrNotInitialized)
	}

	for p, ph := range m.phases {
		blk := m.x[m.start[p]:m.end(p)]
		if err := ph.MoleFractions(blk); err != nil {
			return fmt.Errorf("UpdateMoleFractions: phase %q: %w", ph.Name(), err)
		}
		normalizeBlock(blk)
	}
	m.abundDirty = true

	return nil
}

// refreshTempOK recomputes the per-phase validity flags for the current
// mixture temperature.
func (m *Mixture) refreshTempOK() {
	for p, ph := range m.phases {
		m.tempOK[p] = m.temp >= ph.MinTemp() && m.temp <= ph.MaxTemp()
	}
}

// normalizeBlock scales a positive-sum block to sum to one; a zero block
// is left as-is.
func normalizeBlock(x []float64) {
	var sum float64
	for _, v := range x {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for i := range x {
		x[i] /= sum
	}
}
