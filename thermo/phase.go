package thermo

// Element identifies one chemical element carried by a phase.
//
// AtomicNumber 0 is permitted and conventionally names the electron
// placeholder element "E" used for charge bookkeeping.
type Element struct {
	// Name is the element symbol ("H", "O", "E", ...). Names are the
	// unification key across phases: two phases declaring "O" refer to
	// the same global element.
	Name string

	// AtomicNumber is the proton count, 0 for the electron placeholder.
	AtomicNumber int
}

// Species describes one species of a phase: its name, elemental makeup
// and electrical charge. The thermodynamic parameterization lives in the
// concrete phase model, not here, so the bookkeeping layers can share
// this struct without knowing how properties are evaluated.
type Species struct {
	// Name labels the species ("H2O", "O2", ...). Names must be unique
	// within a phase but MAY repeat across phases (water vapour and ice
	// are distinct global species that share a name).
	Name string

	// Atoms maps element name to the atom count per formula unit.
	// Elements absent from the map contribute zero atoms.
	Atoms map[string]float64

	// Charge is the net elementary charge per formula unit (0 for
	// neutral species, -1 for an electron, +2 for Ca++, ...).
	Charge float64
}

// NAtoms returns the number of atoms of the named element in one formula
// unit of s, zero when the element does not occur.
func (s Species) NAtoms(element string) float64 {
	return s.Atoms[element]
}

// Phase is the capability contract every registered phase must satisfy.
//
// The inventory methods (Name, Elements, Species, NSpecies, MinTemp,
// MaxTemp) describe immutable structure and must return identical data
// for the lifetime of the phase; the returned slices are owned by the
// phase and must not be mutated by callers.
//
// The state methods operate on the phase's mutable (T, P, x) state. The
// mixture layer is the sole writer of that state during a solve: it
// pushes its stored state via SetState before every property query, so
// any drift in the phase's local state is silently overwritten.
//
// All property results are per-mole quantities on the kmol basis.
type Phase interface {
	// Name returns the phase label used in reports ("" is allowed).
	Name() string

	// Elements returns the elements this phase declares.
	Elements() []Element

	// Species returns the species this phase carries, in the phase-local
	// index order used by every composition slice.
	Species() []Species

	// NSpecies returns len(Species()) without allocating.
	NSpecies() int

	// MinTemp and MaxTemp bound the temperature range for which the
	// phase's thermodynamic parameterization is valid.
	MinTemp() float64
	MaxTemp() float64

	// Temperature and Pressure report the current state.
	Temperature() float64
	Pressure() float64

	// SetState sets temperature [K], pressure [Pa] and composition in a
	// single call. x holds phase-local mole fractions; it is copied, and
	// renormalized to sum to one. Errors: ErrBadTemperature,
	// ErrBadPressure, ErrCompositionLength, ErrNegativeFraction,
	// ErrZeroComposition.
	SetState(temp, press float64, x []float64) error

	// MoleFractions writes the current normalized composition into dst.
	// Errors: ErrBufferLength.
	MoleFractions(dst []float64) error

	// ChemPotentials writes the chemical potential of every species at
	// the current state into mu [J/kmol]. Errors: ErrBufferLength.
	ChemPotentials(mu []float64) error

	// StandardChemPotentials writes the standard-state chemical
	// potentials at the current temperature and pressure into mu0
	// [J/kmol]: composition-independent, so pure-phase and ideal-mixing
	// terms are excluded. Errors: ErrBufferLength.
	StandardChemPotentials(mu0 []float64) error

	// Per-mole properties at the current state: enthalpy [J/kmol],
	// entropy [J/(kmol·K)], heat capacity at constant pressure
	// [J/(kmol·K)], Gibbs function [J/kmol] and volume [m³/kmol].
	EnthalpyMolar() float64
	EntropyMolar() float64
	CpMolar() float64
	GibbsMolar() float64
	MolarVolume() float64
}
