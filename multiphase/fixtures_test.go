package multiphase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phaseq/multiphase"
	"github.com/katalvlaran/phaseq/thermo"
)

// Fixture data on the kmol SI basis, shared by the mixture tests.
var (
	elemH  = thermo.Element{Name: "H", AtomicNumber: 1}
	elemN  = thermo.Element{Name: "N", AtomicNumber: 7}
	elemO  = thermo.Element{Name: "O", AtomicNumber: 8}
	elemAr = thermo.Element{Name: "Ar", AtomicNumber: 18}
	elemE  = thermo.Element{Name: "E", AtomicNumber: 0}

	h2Data = thermo.SpeciesData{
		Species: thermo.Species{Name: "H2", Atoms: map[string]float64{"H": 2}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 130.68e3, Cp: 28.84e3},
	}
	o2Data = thermo.SpeciesData{
		Species: thermo.Species{Name: "O2", Atoms: map[string]float64{"O": 2}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 205.15e3, Cp: 29.38e3},
	}
	n2Data = thermo.SpeciesData{
		Species: thermo.Species{Name: "N2", Atoms: map[string]float64{"N": 2}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 191.61e3, Cp: 29.12e3},
	}
	h2oGasData = thermo.SpeciesData{
		Species: thermo.Species{Name: "H2O", Atoms: map[string]float64{"H": 2, "O": 1}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: -241.83e6, S0: 188.84e3, Cp: 33.59e3},
	}
	// Solid water deliberately reuses the species name "H2O": species
	// names are not unique across phases.
	h2oIceData = thermo.SpeciesData{
		Species: thermo.Species{Name: "H2O", Atoms: map[string]float64{"H": 2, "O": 1}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: -292.0e6, S0: 44.6e3, Cp: 38.1e3},
	}
)

// newHOGas builds the H2/O2/H2O ideal-gas fixture.
func newHOGas(t *testing.T) *thermo.IdealGas {
	t.Helper()
	gas, err := thermo.NewIdealGas("gas",
		[]thermo.Element{elemH, elemO},
		[]thermo.SpeciesData{h2Data, o2Data, h2oGasData})
	require.NoError(t, err)

	return gas
}

// newIce builds the pure solid-water fixture.
func newIce(t *testing.T) *thermo.Stoich {
	t.Helper()
	ice, err := thermo.NewStoich("ice",
		[]thermo.Element{elemH, elemO}, h2oIceData, 0.01965)
	require.NoError(t, err)

	return ice
}

// newNarrowGas builds an N2/O2 gas valid only between 250 and 300 K.
func newNarrowGas(t *testing.T) *thermo.IdealGas {
	t.Helper()
	gas, err := thermo.NewIdealGas("narrow",
		[]thermo.Element{elemN, elemO},
		[]thermo.SpeciesData{n2Data, o2Data},
		thermo.WithTempLimits(250, 300))
	require.NoError(t, err)

	return gas
}

// newPlasma builds an Ar/Ar+/e- gas carrying net-charge bookkeeping.
func newPlasma(t *testing.T) *thermo.IdealGas {
	t.Helper()
	gas, err := thermo.NewIdealGas("plasma",
		[]thermo.Element{elemAr, elemE},
		[]thermo.SpeciesData{
			{
				Species: thermo.Species{Name: "Ar", Atoms: map[string]float64{"Ar": 1}},
				Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 154.85e3, Cp: 20.79e3},
			},
			{
				Species: thermo.Species{Name: "Ar+", Atoms: map[string]float64{"Ar": 1, "E": -1}, Charge: 1},
				Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 1.52e9, S0: 166.0e3, Cp: 20.79e3},
			},
			{
				Species: thermo.Species{Name: "e-", Atoms: map[string]float64{"E": 1}, Charge: -1},
				Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 20.98e3, Cp: 20.79e3},
			},
		})
	require.NoError(t, err)

	return gas
}

// newMix builds the standard two-phase mixture (gas + ice), initialized
// and seeded with 1 kmol H2 and 0.5 kmol O2.
func newMix(t *testing.T) *multiphase.Mixture {
	t.Helper()
	mix := multiphase.NewMixture()
	require.NoError(t, mix.AddPhase(newHOGas(t), 0))
	require.NoError(t, mix.AddPhase(newIce(t), 0))
	require.NoError(t, mix.Init())
	require.NoError(t, mix.SetMolesByName(map[string]float64{"H2": 1, "O2": 0.5}))

	return mix
}
