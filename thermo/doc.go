// Package thermo defines the phase-capability contract consumed by the
// multiphase, basis and equil packages, together with two reference
// phase models that satisfy it.
//
// A Phase is a homogeneous thermodynamic region (a gas mixture, a pure
// solid, a solution) that can report its species/element inventory and
// evaluate chemical potentials at its current temperature, pressure and
// composition. The equilibrium machinery never owns a Phase: it borrows
// references and pushes state into them before every property query.
//
// Reference models:
//
//   - IdealGas: a multi-species ideal-gas solution,
//     μ_k = μ°_k(T) + R·T·ln(x_k·P/P°).
//   - Stoich:   a single-species incompressible condensed phase,
//     μ = μ°(T) + v°·(P − P°).
//
// Both use the ConstCp standard-state parameterization (constant molar
// heat capacity anchored at T₀), which keeps every property closed-form:
//
//	h(T)  = h° + c_p°·(T − T₀)
//	s(T)  = s° + c_p°·ln(T/T₀)
//	μ°(T) = h(T) − T·s(T)
//
// Units follow the kmol SI convention throughout: energies in J/kmol,
// entropies and heat capacities in J/(kmol·K), molar volumes in m³/kmol,
// temperatures in K, pressures in Pa.
//
// Errors (sentinel):
//
//	ErrNoSpecies          - a phase was constructed with no species.
//	ErrNoElements         - a phase was constructed with no elements.
//	ErrDuplicateElement   - two declared elements share a name.
//	ErrDuplicateSpecies   - two declared species share a name.
//	ErrUnknownElement     - a species references an undeclared element.
//	ErrBadThermo          - invalid ConstCp parameterization.
//	ErrBadTempRange       - MinTemp/MaxTemp do not form a valid range.
//	ErrBadTemperature     - non-positive temperature.
//	ErrBadPressure        - non-positive pressure.
//	ErrBadMolarVolume     - non-positive molar volume.
//	ErrCompositionLength  - composition slice length mismatch.
//	ErrNegativeFraction   - a mole fraction is negative.
//	ErrZeroComposition    - all mole fractions are zero.
//	ErrBufferLength       - destination buffer length mismatch.
package thermo
