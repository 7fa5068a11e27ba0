// Package basis selects a component basis for a multiphase mixture: a
// maximal linearly independent set of species from whose formation
// reactions every other species can be built.
//
// 🚀 What is a component basis?
//
//	The element-conservation constraints of a mixture are spanned by a
//	small set of "component" species, at most one per element carrying
//	a nonzero abundance. Every remaining species j is then expressible
//	as a formation reaction
//
//	    species_j = Σ_c ν_jc · component_c
//
//	whose stoichiometric coefficients ν_jc conserve every element by
//	construction. Equilibrium solvers step along these reactions, so
//	element totals are invariant no matter how far the steps go.
//
// ✨ Key features:
//   - candidate preference by descending mole amount: abundant species
//     become components, trace species get formation reactions
//   - species of temperature-invalid phases rank behind every valid
//     candidate, so a frozen phase cannot capture a component slot and
//     drag the reactions of the valid phases into its freeze
//   - pivoted Gaussian elimination with a relative pivot threshold;
//     linearly dependent columns are skipped, not misaccepted
//   - elements whose abundance magnitude is (numerically) zero are
//     dropped from the active set instead of producing a singular system
//   - formation-reaction coefficients solved with gonum's LU
//     factorization of the component submatrix
//   - UsedZeroedSpecies reports when no mole-bearing species could fill
//     a slot, which equilibrium drivers treat as a hint to re-optimize
//     after the first steps
//
// ⚙️ Usage:
//
//	b, err := basis.Optimize(mix, basis.WithPivotTol(1e-9))
//	if err != nil { ... }
//	comps := b.Components() // global species indices, one per element
//
// Performance:
//
//   - Time:  O(M²·K) elimination + O(M³ + M²·K) for the reaction solves,
//     with M elements and K species
//   - Space: O(M·K)
//
// See example_test.go for a runnable walkthrough.
package basis
