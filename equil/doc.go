// Package equil drives a multiphase mixture to chemical equilibrium by
// minimizing its total Gibbs function along element-conserving
// formation reactions.
//
// 🚀 How the solver works:
//
//	A component basis from package basis turns equilibrium into an
//	unconstrained descent problem: stepping any formation reaction
//
//	    species_j = Σ_c ν_jc · component_c
//
//	by an extent δξ changes mole amounts without changing element
//	totals, so conservation holds exactly at every iterate. The inner
//	loop (fixed T, P) relaxes all reaction affinities ΔG_j/RT to zero
//	with damped Newton steps; the outer loop, used when something other
//	than temperature and pressure is held fixed, re-equilibrates while
//	adjusting T (or P) until the conserved property matches its target.
//
// ✨ Key features:
//   - state pairs TP, HP, SP and TV: fixed temperature/pressure,
//     enthalpy/pressure, entropy/pressure or temperature/volume
//   - exact element conservation, converged or not: every update is a
//     combination of formation reactions
//   - positivity-damped steps with backtracking; species are absorbed
//     at exactly zero and phases driven to zero are frozen
//   - mid-solve basis re-optimization when a component collapses
//   - phases outside their temperature validity range are flagged, not
//     fatal: their reactions freeze and the solve continues
//   - inspectable lifecycle: Status, Steps, OuterIterations and
//     LastResidual stay queryable after success or failure
//   - structured diagnostics through a zerolog.Logger (silent by
//     default)
//
// ⚙️ Usage:
//
//	s := equil.NewSolver(mix, equil.HP, equil.WithTolerance(1e-9))
//	g, err := s.Solve()
//	if err != nil { ... } // errors.Is(err, equil.ErrNotConverged) etc.
//
// or, when the post-mortem accessors are not needed:
//
//	g, err := equil.Equilibrate(mix, equil.TP)
//
// Performance:
//
//   - Time:  O(steps · R·(C + K)) per inner solve, with R reactions,
//     C components and K species; outer pairs multiply by the outer
//     iteration count
//   - Space: O(K + P) scratch, reused across steps
//
// See example_test.go for a runnable walkthrough.
package equil
