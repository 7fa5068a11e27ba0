package multiphase_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phaseq/multiphase"
	"github.com/katalvlaran/phaseq/thermo"
)

// TestMixture_SetTemperature pushes shared state into every phase.
func TestMixture_SetTemperature(t *testing.T) {
	mix := newMix(t)

	require.NoError(t, mix.SetTemperature(500))
	require.NoError(t, mix.SetPressure(2e5))
	assert.Equal(t, 500.0, mix.Temperature())
	assert.Equal(t, 2e5, mix.Pressure())

	gas, err := mix.Phase(0)
	require.NoError(t, err)
	assert.Equal(t, 500.0, gas.Temperature())
	assert.Equal(t, 2e5, gas.Pressure())

	assert.ErrorIs(t, mix.SetTemperature(-1), thermo.ErrBadTemperature)
	assert.ErrorIs(t, mix.SetPressure(math.NaN()), thermo.ErrBadPressure)
}

// TestMixture_PhaseOverwritesDrift shows Phase(n) silently restores the
// mixture state over any phase-local changes made behind its back.
func TestMixture_PhaseOverwritesDrift(t *testing.T) {
	mix := newMix(t)
	require.NoError(t, mix.SetTemperature(500))

	gas, err := mix.Phase(0)
	require.NoError(t, err)
	require.NoError(t, gas.SetState(999, 9e5, []float64{1, 1, 1}))

	gas, err = mix.Phase(0)
	require.NoError(t, err)
	assert.Equal(t, 500.0, gas.Temperature())
	assert.Equal(t, mix.Pressure(), gas.Pressure())

	x := make([]float64, 3)
	require.NoError(t, gas.MoleFractions(x))
	assert.InDelta(t, mix.MoleFraction(0), x[0], 1e-15)
}

// TestMixture_SyncRoundTrip verifies that a push followed by a pull
// reproduces the global mole-fraction vector.
func TestMixture_SyncRoundTrip(t *testing.T) {
	mix := newMix(t)

	before := make([]float64, mix.NSpecies())
	require.NoError(t, mix.MoleFractions(before))

	require.NoError(t, mix.UpdatePhases())
	require.NoError(t, mix.UpdateMoleFractions())

	after := make([]float64, mix.NSpecies())
	require.NoError(t, mix.MoleFractions(after))
	for k := range before {
		assert.InDelta(t, before[k], after[k], 1e-14, "species %d", k)
	}
}

// TestMixture_UpdateMoleFractionsPulls reflects phase-side composition
// changes back into the global vector.
func TestMixture_UpdateMoleFractionsPulls(t *testing.T) {
	mix := newMix(t)

	gas, err := mix.Phase(0)
	require.NoError(t, err)
	require.NoError(t, gas.SetState(mix.Temperature(), mix.Pressure(), []float64{1, 1, 2}))
	require.NoError(t, mix.UpdateMoleFractions())

	assert.InDelta(t, 0.25, mix.MoleFraction(0), 1e-15)
	assert.InDelta(t, 0.25, mix.MoleFraction(1), 1e-15)
	assert.InDelta(t, 0.5, mix.MoleFraction(2), 1e-15)
	// Pulling compositions never touches phase totals.
	assert.InDelta(t, 1.5, mix.PhaseMoles(0), 1e-15)
}

// TestMixture_TempOK flags phases whose validity range excludes the
// mixture temperature while state propagation keeps working.
func TestMixture_TempOK(t *testing.T) {
	// The wide gas is valid 200..6000 K, the narrow one 250..300 K.
	mix := multiphase.NewMixture()
	require.NoError(t, mix.AddPhase(newHOGas(t), 1))
	require.NoError(t, mix.AddPhase(newNarrowGas(t), 1))
	require.NoError(t, mix.Init())

	require.NoError(t, mix.SetTemperature(280))
	assert.True(t, mix.TempOK(0))
	assert.True(t, mix.TempOK(1))

	xBefore := make([]float64, mix.NSpecies())
	require.NoError(t, mix.MoleFractions(xBefore))

	// 1000 K is far outside the narrow phase's range; the setter still
	// succeeds and only the flag reports the violation.
	require.NoError(t, mix.SetTemperature(1000))
	assert.True(t, mix.TempOK(0))
	assert.False(t, mix.TempOK(1))
	assert.False(t, mix.TempOK(9))

	xAfter := make([]float64, mix.NSpecies())
	require.NoError(t, mix.MoleFractions(xAfter))
	assert.Equal(t, xBefore, xAfter)

	narrow, err := mix.Phase(1)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, narrow.Temperature())
}

// TestMixture_ValidChemPotentials substitutes the skip value for phases
// outside their temperature range.
func TestMixture_ValidChemPotentials(t *testing.T) {
	mix := multiphase.NewMixture()
	require.NoError(t, mix.AddPhase(newHOGas(t), 1))
	require.NoError(t, mix.AddPhase(newNarrowGas(t), 1))
	require.NoError(t, mix.Init())
	require.NoError(t, mix.SetTemperature(1000))

	const skip = 1e30
	mu := make([]float64, mix.NSpecies())
	require.NoError(t, mix.ValidChemPotentials(skip, mu, false))

	// Gas species carry finite potentials; the frozen narrow phase
	// carries the sentinel.
	for k := 0; k < 3; k++ {
		assert.Less(t, math.Abs(mu[k]), skip, "species %d", k)
	}
	assert.Equal(t, skip, mu[3])
	assert.Equal(t, skip, mu[4])

	t.Run("standard potentials skip composition", func(t *testing.T) {
		muFull := make([]float64, mix.NSpecies())
		muStd := make([]float64, mix.NSpecies())
		require.NoError(t, mix.ValidChemPotentials(skip, muFull, false))
		require.NoError(t, mix.ValidChemPotentials(skip, muStd, true))

		// mu = mu0 + R*T*ln(x) for in-range ideal-gas species.
		rt := thermo.GasConstant * mix.Temperature()
		for k := 0; k < 3; k++ {
			want := muStd[k] + rt*math.Log(mix.MoleFraction(k))
			assert.InDelta(t, want, muFull[k], 1e-3, "species %d", k)
		}
	})
	t.Run("length mismatch", func(t *testing.T) {
		assert.ErrorIs(t, mix.ValidChemPotentials(skip, make([]float64, 2), false),
			multiphase.ErrLengthMismatch)
	})
}

// TestMixture_ChemPotentials matches the per-phase values pushed through
// the global vector.
func TestMixture_ChemPotentials(t *testing.T) {
	mix := newMix(t)
	require.NoError(t, mix.SetTemperature(500))

	mu := make([]float64, mix.NSpecies())
	require.NoError(t, mix.ChemPotentials(mu))

	gas, err := mix.Phase(0)
	require.NoError(t, err)
	muGas := make([]float64, 3)
	require.NoError(t, gas.ChemPotentials(muGas))
	for k := 0; k < 3; k++ {
		assert.Equal(t, muGas[k], mu[k], "species %d", k)
	}
}

// TestMixture_ExtensiveProperties checks G = H - T*S and volume
// additivity over phases.
func TestMixture_ExtensiveProperties(t *testing.T) {
	mix := newMix(t)
	require.NoError(t, mix.SetTemperature(500))
	require.NoError(t, mix.SetPhaseMoles(1, 0.2))

	h, err := mix.Enthalpy()
	require.NoError(t, err)
	s, err := mix.Entropy()
	require.NoError(t, err)
	g, err := mix.Gibbs()
	require.NoError(t, err)
	assert.InDelta(t, h-500*s, g, math.Abs(g)*1e-12)

	v, err := mix.Volume()
	require.NoError(t, err)
	wantV := 1.5*thermo.GasConstant*500/mix.Pressure() + 0.2*0.01965
	assert.InDelta(t, wantV, v, wantV*1e-12)

	cp, err := mix.Cp()
	require.NoError(t, err)
	assert.Greater(t, cp, 0.0)

	t.Run("scales with moles", func(t *testing.T) {
		g1, err := mix.Gibbs()
		require.NoError(t, err)
		n := make([]float64, mix.NSpecies())
		require.NoError(t, mix.Moles(n))
		for k := range n {
			n[k] *= 2
		}
		require.NoError(t, mix.SetMoles(n))
		g2, err := mix.Gibbs()
		require.NoError(t, err)
		assert.InDelta(t, 2*g1, g2, math.Abs(g1)*1e-10)
	})
}

// TestMixture_Report renders phase blocks and element totals.
func TestMixture_Report(t *testing.T) {
	mix := newMix(t)
	require.NoError(t, mix.SetTemperature(500))

	rep := mix.Report()
	assert.True(t, strings.Contains(rep, `phase "gas"`))
	assert.True(t, strings.Contains(rep, `phase "ice"`))
	assert.True(t, strings.Contains(rep, "H2"))
	assert.True(t, strings.Contains(rep, "elements:"))
	assert.Equal(t, rep, mix.String())

	t.Run("before init", func(t *testing.T) {
		fresh := multiphase.NewMixture()
		assert.True(t, strings.Contains(fresh.Report(), "not initialized"))
	})
}
