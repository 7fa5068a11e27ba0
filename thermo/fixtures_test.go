package thermo_test

import (
	"github.com/katalvlaran/phaseq/thermo"
)

// Shared H/O fixture data on the kmol SI basis. Values are rounded
// standard-state properties at 298.15 K; accurate enough for property
// identities and equilibrium smoke tests.
var (
	elemH = thermo.Element{Name: "H", AtomicNumber: 1}
	elemO = thermo.Element{Name: "O", AtomicNumber: 8}

	h2Data = thermo.SpeciesData{
		Species: thermo.Species{Name: "H2", Atoms: map[string]float64{"H": 2}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 130.68e3, Cp: 28.84e3},
	}
	o2Data = thermo.SpeciesData{
		Species: thermo.Species{Name: "O2", Atoms: map[string]float64{"O": 2}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: 0, S0: 205.15e3, Cp: 29.38e3},
	}
	h2oData = thermo.SpeciesData{
		Species: thermo.Species{Name: "H2O", Atoms: map[string]float64{"H": 2, "O": 1}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: -241.83e6, S0: 188.84e3, Cp: 33.59e3},
	}
	iceData = thermo.SpeciesData{
		Species: thermo.Species{Name: "H2O(s)", Atoms: map[string]float64{"H": 2, "O": 1}},
		Thermo:  thermo.ConstCp{T0: thermo.RefTemp, H0: -292.0e6, S0: 44.6e3, Cp: 38.1e3},
	}
)

// newHOGas builds the three-species H2/O2/H2O ideal-gas fixture.
func newHOGas(opts ...thermo.GasOption) (*thermo.IdealGas, error) {
	return thermo.NewIdealGas(
		"ho-gas",
		[]thermo.Element{elemH, elemO},
		[]thermo.SpeciesData{h2Data, o2Data, h2oData},
		opts...,
	)
}

// newIce builds the pure-solid water fixture (molar volume of ice).
func newIce(opts ...thermo.StoichOption) (*thermo.Stoich, error) {
	return thermo.NewStoich(
		"ice",
		[]thermo.Element{elemH, elemO},
		iceData,
		0.01965,
		opts...,
	)
}
