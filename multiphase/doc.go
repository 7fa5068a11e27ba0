// Package multiphase manages a mixture of thermodynamic phases as one
// chemical system: a shared temperature and pressure, per-phase mole
// totals, a global species index and a unified element set.
//
// 🚀 What is a Mixture?
//
//	A Mixture is a non-owning registry of thermo.Phase objects. Each
//	registered phase keeps its own composition model; the mixture glues
//	them together with global bookkeeping:
//	  • contiguous global species indices, one block per phase
//	  • a unified element list (phases may declare overlapping elements)
//	  • an element × species atom matrix (gonum mat.Dense)
//	  • per-phase mole totals [kmol] and a global mole-fraction vector
//
// ✨ Key features:
//   - AddPhase / AddPhases, then a single Init() that seals the mixture
//     and builds the immutable name tables and atom matrix
//   - two-way state synchronization: UpdatePhases pushes (T, P, x) into
//     every phase, UpdateMoleFractions pulls compositions back
//   - per-phase temperature-validity flags (TempOK) with substitute
//     potentials via ValidChemPotentials for out-of-range phases
//   - extensive properties (Volume, Enthalpy, Entropy, Gibbs, Cp),
//     element abundances, charge accounting, a plain-text Report
//
// ⚙️ Usage:
//
//	mix := multiphase.NewMixture()
//	_ = mix.AddPhase(gas, 1.0)   // 1 kmol of the gas phase
//	_ = mix.AddPhase(ice, 0.0)   // condensed phase, initially absent
//	if err := mix.Init(); err != nil { ... }
//
//	_ = mix.SetTemperature(500)
//	g, err := mix.Gibbs()        // extensive Gibbs function [J]
//
// The mixture never frees or copies phases; callers keep ownership and
// must keep every registered phase alive for the mixture's lifetime.
// Equilibrium solving lives in the equil package, which takes a *Mixture
// as an argument; Mixture itself carries no solver state.
//
// Performance:
//
//   - Init: O(P·K + M·K) for P phases, K global species, M elements
//   - state sync and property sums: O(K) per call
//
// See example_test.go for runnable examples.
package multiphase
