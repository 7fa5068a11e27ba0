package basis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phaseq/multiphase"
	"github.com/katalvlaran/phaseq/thermo"
)

// Fixture data on the kmol SI basis, shared by the basis tests.
var (
	elemC  = thermo.Element{Name: "C", AtomicNumber: 6}
	elemH  = thermo.Element{Name: "H", AtomicNumber: 1}
	elemO  = thermo.Element{Name: "O", AtomicNumber: 8}
	elemAr = thermo.Element{Name: "Ar", AtomicNumber: 18}
	elemNa = thermo.Element{Name: "Na", AtomicNumber: 11}
	elemE  = thermo.Element{Name: "E", AtomicNumber: 0}

	flatCp = thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 150e3, Cp: 30e3}
)

// gasSpecies builds a SpeciesData with the shared flat caloric model;
// the basis search only reads the composition, never the thermo.
func gasSpecies(name string, atoms map[string]float64) thermo.SpeciesData {
	return thermo.SpeciesData{
		Species: thermo.Species{Name: name, Atoms: atoms},
		Thermo:  flatCp,
	}
}

// newHOMix builds the two-phase H/O mixture: an H2/O2/H2O gas plus a
// solid-water phase, seeded with 1 kmol H2 and 0.5 kmol O2.
func newHOMix(t *testing.T) *multiphase.Mixture {
	t.Helper()
	gas, err := thermo.NewIdealGas("gas",
		[]thermo.Element{elemH, elemO},
		[]thermo.SpeciesData{
			gasSpecies("H2", map[string]float64{"H": 2}),
			gasSpecies("O2", map[string]float64{"O": 2}),
			gasSpecies("H2O", map[string]float64{"H": 2, "O": 1}),
		})
	require.NoError(t, err)
	ice, err := thermo.NewStoich("ice",
		[]thermo.Element{elemH, elemO},
		gasSpecies("H2O", map[string]float64{"H": 2, "O": 1}),
		0.01965)
	require.NoError(t, err)

	mix := multiphase.NewMixture()
	require.NoError(t, mix.AddPhase(gas, 0))
	require.NoError(t, mix.AddPhase(ice, 0))
	require.NoError(t, mix.Init())
	require.NoError(t, mix.SetMolesByName(map[string]float64{"H2": 1, "O2": 0.5}))

	return mix
}

// newCombustionMix builds a six-species C/H/O gas seeded with a lean
// methane/oxygen charge.
func newCombustionMix(t *testing.T) *multiphase.Mixture {
	t.Helper()
	gas, err := thermo.NewIdealGas("gas",
		[]thermo.Element{elemC, elemH, elemO},
		[]thermo.SpeciesData{
			gasSpecies("CH4", map[string]float64{"C": 1, "H": 4}),
			gasSpecies("O2", map[string]float64{"O": 2}),
			gasSpecies("CO2", map[string]float64{"C": 1, "O": 2}),
			gasSpecies("H2O", map[string]float64{"H": 2, "O": 1}),
			gasSpecies("H2", map[string]float64{"H": 2}),
			gasSpecies("CO", map[string]float64{"C": 1, "O": 1}),
		})
	require.NoError(t, err)

	mix := multiphase.NewMixture()
	require.NoError(t, mix.AddPhase(gas, 0))
	require.NoError(t, mix.Init())
	require.NoError(t, mix.SetMolesByName(map[string]float64{"CH4": 1, "O2": 2}))

	return mix
}
