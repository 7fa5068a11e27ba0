package thermo

import "errors"

// Physical constants on the kmol SI basis.
const (
	// GasConstant is the universal gas constant R [J/(kmol·K)].
	GasConstant = 8314.462618

	// OneAtm is one standard atmosphere [Pa].
	OneAtm = 101325.0

	// RefPressure is the standard-state pressure P° [Pa] shared by
	// every phase model in this package.
	RefPressure = OneAtm

	// Faraday is the charge carried by one kmol of elementary charges
	// [C/kmol].
	Faraday = 9.648533212e7

	// RefTemp is the default anchor temperature T₀ for ConstCp data [K].
	RefTemp = 298.15

	// Tiny floors mole fractions inside logarithms so that chemical
	// potentials of absent species stay finite.
	Tiny = 1e-20
)

// Default validity range for phase thermodynamic data [K]. The bounds
// follow the conventional fit range of gas-phase reference data.
const (
	DefaultMinTemp = 200.0
	DefaultMaxTemp = 6000.0
)

// Sentinel errors for phase construction and state manipulation.
var (
	// ErrNoSpecies indicates a phase was constructed with an empty species list.
	ErrNoSpecies = errors.New("thermo: phase must contain at least one species")

	// ErrNoElements indicates a phase was constructed with an empty element list.
	ErrNoElements = errors.New("thermo: phase must declare at least one element")

	// ErrDuplicateElement indicates two declared elements share a name.
	ErrDuplicateElement = errors.New("thermo: duplicate element name")

	// ErrDuplicateSpecies indicates two declared species share a name.
	ErrDuplicateSpecies = errors.New("thermo: duplicate species name")

	// ErrUnknownElement indicates a species composition references an
	// element absent from the phase's element list.
	ErrUnknownElement = errors.New("thermo: species references an undeclared element")

	// ErrBadThermo indicates an invalid ConstCp parameterization.
	ErrBadThermo = errors.New("thermo: invalid const-cp parameterization")

	// ErrBadTempRange indicates MinTemp/MaxTemp do not satisfy 0 < min < max.
	ErrBadTempRange = errors.New("thermo: invalid temperature validity range")

	// ErrBadTemperature indicates a non-positive temperature.
	ErrBadTemperature = errors.New("thermo: temperature must be positive")

	// ErrBadPressure indicates a non-positive pressure.
	ErrBadPressure = errors.New("thermo: pressure must be positive")

	// ErrBadMolarVolume indicates a non-positive condensed-phase molar volume.
	ErrBadMolarVolume = errors.New("thermo: molar volume must be positive")

	// ErrCompositionLength indicates a composition slice whose length does
	// not match the phase's species count.
	ErrCompositionLength = errors.New("thermo: composition length mismatch")

	// ErrNegativeFraction indicates a negative mole fraction.
	ErrNegativeFraction = errors.New("thermo: negative mole fraction")

	// ErrZeroComposition indicates a composition whose entries are all zero.
	ErrZeroComposition = errors.New("thermo: mole fractions must not all be zero")

	// ErrBufferLength indicates a destination buffer whose length does not
	// match the phase's species count.
	ErrBufferLength = errors.New("thermo: destination buffer length mismatch")
)
