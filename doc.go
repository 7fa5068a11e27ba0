// Package phaseq computes chemical equilibrium for mixtures of ideal
// multi-species solution phases and pure condensed phases, from phase
// models through element accounting to Gibbs minimization.
//
// 🚀 What is phaseq?
//
//	A library for the classic equilibrium question: given a closed
//	system held at a fixed pair of thermodynamic properties, which
//	composition minimizes the total Gibbs function? phaseq answers it
//	for any combination of registered phases:
//		• Phase models: ideal gases and stoichiometric solids with
//		  constant-cp standard states
//		• Mixture bookkeeping: element unification across phases, mole
//		  and abundance accounting, extensive properties, shared state
//		• Component bases: pivoted selection of independent species and
//		  the formation reactions of everything else
//		• Equilibrium: relaxation along formation reactions at fixed
//		  TP, with outer loops for fixed HP, SP and TV
//
// ✨ Why phaseq?
//
//   - Exact conservation: every solver step is a combination of
//     formation reactions, so element totals never drift
//   - Honest failure modes: flagged phases freeze instead of aborting,
//     and failed solves leave their counters and residuals readable
//   - Small, explicit API: plain structs, functional options, sentinel
//     errors, no globals
//
// The packages, bottom to top:
//
//	thermo/     — Phase contract, ConstCp standard states, IdealGas and
//	              Stoich reference models
//	multiphase/ — Mixture: phase registry, element unification, state
//	              sync, moles, properties, report
//	basis/      — component-basis optimizer over the current amounts
//	equil/      — equilibrium solver for the TP, HP, SP and TV pairs
//
// A three-line tour (construction and error handling elided):
//
//	mix.SetMolesByName(map[string]float64{"H2": 1, "O2": 0.5})
//	g, err := equil.Equilibrate(mix, equil.TP)
//	fmt.Println(mix.Report())
//
//	go get github.com/katalvlaran/phaseq
package phaseq
