package equil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phaseq/multiphase"
	"github.com/katalvlaran/phaseq/thermo"
)

// Fixture thermochemistry on the kmol SI basis. The H/O numbers track
// the standard-state tables closely enough that the equilibrium
// outcomes match physical intuition: hydrogen burns to completion, and
// water condenses below its sublimation point.
var (
	elemH  = thermo.Element{Name: "H", AtomicNumber: 1}
	elemO  = thermo.Element{Name: "O", AtomicNumber: 8}
	elemAr = thermo.Element{Name: "Ar", AtomicNumber: 18}
	elemNa = thermo.Element{Name: "Na", AtomicNumber: 11}
	elemE  = thermo.Element{Name: "E", AtomicNumber: 0}
)

// species bundles a composition with a ConstCp block anchored at RefTemp.
func species(name string, atoms map[string]float64, h0, s0, cp float64) thermo.SpeciesData {
	return thermo.SpeciesData{
		Species: thermo.Species{Name: name, Atoms: atoms},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: h0, S0: s0, Cp: cp},
	}
}

// hoGasSpecies is the three-species H2/O2/H2O gas inventory.
func hoGasSpecies() []thermo.SpeciesData {
	return []thermo.SpeciesData{
		species("H2", map[string]float64{"H": 2}, 0, 130.68e3, 28.84e3),
		species("O2", map[string]float64{"O": 2}, 0, 205.15e3, 29.38e3),
		species("H2O", map[string]float64{"H": 2, "O": 1}, -241.83e6, 188.84e3, 33.59e3),
	}
}

// iceSpecies is solid water; its formation data sit low enough below
// the gas that condensation wins at low temperature.
func iceSpecies() thermo.SpeciesData {
	return species("H2O", map[string]float64{"H": 2, "O": 1}, -292.7e6, 41.0e3, 38.0e3)
}

// newHOGas builds a single-phase H2/O2/H2O mixture at 1 atm, seeded
// from byName and brought to temp.
func newHOGas(tb testing.TB, byName map[string]float64, temp float64) *multiphase.Mixture {
	tb.Helper()
	gas, err := thermo.NewIdealGas("gas", []thermo.Element{elemH, elemO}, hoGasSpecies())
	require.NoError(tb, err)

	mix := multiphase.NewMixture()
	require.NoError(tb, mix.AddPhase(gas, 0))
	require.NoError(tb, mix.Init())
	require.NoError(tb, mix.SetMolesByName(byName))
	require.NoError(tb, mix.SetTemperature(temp))

	return mix
}

// newWaterMix builds the gas plus a solid-water phase, seeded with a
// stoichiometric 1 kmol H2 + 0.5 kmol O2 charge at 1 atm.
func newWaterMix(tb testing.TB, temp float64) *multiphase.Mixture {
	tb.Helper()
	gas, err := thermo.NewIdealGas("gas", []thermo.Element{elemH, elemO}, hoGasSpecies())
	require.NoError(tb, err)
	ice, err := thermo.NewStoich("ice", []thermo.Element{elemH, elemO}, iceSpecies(), 0.01965)
	require.NoError(tb, err)

	mix := multiphase.NewMixture()
	require.NoError(tb, mix.AddPhase(gas, 0))
	require.NoError(tb, mix.AddPhase(ice, 0))
	require.NoError(tb, mix.Init())
	require.NoError(tb, mix.SetMolesByName(map[string]float64{"H2": 1, "O2": 0.5}))
	require.NoError(tb, mix.SetTemperature(temp))

	return mix
}

// newColdWaterMix narrows the solid phase's validity to [200, 300] K
// and seeds it alongside the unburned gas, so a hot solve must leave
// the solid untouched.
func newColdWaterMix(tb testing.TB) *multiphase.Mixture {
	tb.Helper()
	gas, err := thermo.NewIdealGas("gas", []thermo.Element{elemH, elemO}, hoGasSpecies())
	require.NoError(tb, err)
	ice, err := thermo.NewStoich("ice", []thermo.Element{elemH, elemO}, iceSpecies(), 0.01965,
		thermo.WithStoichTempLimits(200, 300))
	require.NoError(tb, err)

	mix := multiphase.NewMixture()
	require.NoError(tb, mix.AddPhase(gas, 0))
	require.NoError(tb, mix.AddPhase(ice, 0))
	require.NoError(tb, mix.Init())
	require.NoError(tb, mix.SetMolesByName(map[string]float64{"H2": 1, "O2": 0.5}))
	require.NoError(tb, mix.SetPhaseMoles(1, 0.3))
	require.NoError(tb, mix.SetTemperature(1000))

	return mix
}

// newIonGas builds a Na/Na+/e- gas with the electron charge carried as
// an element, seeded with a net negative charge at 2000 K.
func newIonGas(tb testing.TB) *multiphase.Mixture {
	tb.Helper()
	na := species("Na", map[string]float64{"Na": 1}, 0, 153.72e3, 20.79e3)
	cation := species("Na+", map[string]float64{"Na": 1, "E": -1}, 40e6, 148.0e3, 20.79e3)
	cation.Charge = 1
	electron := species("e-", map[string]float64{"E": 1}, 0, 20.0e3, 20.79e3)
	electron.Charge = -1

	plasma, err := thermo.NewIdealGas("plasma",
		[]thermo.Element{elemNa, elemE},
		[]thermo.SpeciesData{na, cation, electron})
	require.NoError(tb, err)

	mix := multiphase.NewMixture()
	require.NoError(tb, mix.AddPhase(plasma, 0))
	require.NoError(tb, mix.Init())
	require.NoError(tb, mix.SetMolesByName(map[string]float64{"Na": 1, "Na+": 0.01, "e-": 0.02}))
	require.NoError(tb, mix.SetTemperature(2000))

	return mix
}
