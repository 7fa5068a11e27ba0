package basis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phaseq/multiphase"
)

// Optimize selects the component basis for the mixture's current mole
// amounts and builds the formation-reaction matrix for every remaining
// species.
//
// Candidates are scanned valid-temperature phases first, then by
// descending mole amount (ties by ascending global index), so the basis
// prefers species that are present and free to react; a species in a
// temperature-invalid phase, or one with zero moles, is accepted only
// when every better-placed candidate for the slot is linearly dependent
// on the components already chosen. Zero-mole fallbacks are reported
// via UsedZeroedSpecies. Elements whose abundance magnitude is
// numerically zero are dropped from the active set, shrinking
// NComponents instead of failing.
//
// Errors: ErrNilMixture, multiphase.ErrNotInitialized,
// ErrDegenerateBasis wrapped with the element that no remaining species
// column can represent.
func Optimize(mix *multiphase.Mixture, opts ...Option) (*Basis, error) {
	// Stage 0: options and input validation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if mix == nil {
		return nil, fmt.Errorf("Optimize: %w", ErrNilMixture)
	}
	if !mix.Initialized() {
		return nil, fmt.Errorf("Optimize: %w", multiphase.ErrNotInitialized)
	}
	nEl, nSp := mix.NElements(), mix.NSpecies()

	// Stage 1: snapshot moles and element abundances.
	moles := make([]float64, nSp)
	if err := mix.Moles(moles); err != nil {
		return nil, fmt.Errorf("Optimize: %w", err)
	}
	abund := make([]float64, nEl)
	if err := mix.ElementAbundances(abund); err != nil {
		return nil, fmt.Errorf("Optimize: %w", err)
	}

	// Stage 2: partition elements into active and dropped. Cations carry
	// a negative electron count, so a net positively charged mixture
	// holds a negative electron abundance; comparisons use magnitudes.
	// An element whose |abundance| is at most RelTol times the largest
	// is absent: conservation pins every species containing it at zero
	// anyway.
	var maxAb float64
	for _, v := range abund {
		if a := math.Abs(v); a > maxAb {
			maxAb = a
		}
	}
	active := make([]int, 0, nEl)
	dropped := make([]int, 0)
	for el := 0; el < nEl; el++ {
		if maxAb > 0 && math.Abs(abund[el]) > o.RelTol*maxAb {
			active = append(active, el)
		} else {
			dropped = append(dropped, el)
		}
	}
	if len(active) == 0 {
		// Nothing to conserve and nothing to step: every species counts
		// as an inert noncomponent.
		sp := make([]int, nSp)
		inert := make([]bool, nSp)
		for k := range sp {
			sp[k] = k
			inert[k] = true
		}

		return &Basis{
			Species:  sp,
			Elements: dropped,
			Inert:    inert,
		}, nil
	}

	// Stage 3: candidate order. Species of temperature-invalid phases
	// sort behind every valid-phase species regardless of amount: a
	// component inside a frozen phase drags each formation reaction
	// consuming it into the freeze. Within each group, descending moles,
	// ties by index.
	cand := make([]int, nSp)
	valid := make([]bool, nSp)
	for k := range cand {
		cand[k] = k
		valid[k] = mix.TempOK(mix.SpeciesPhaseIndex(k))
	}
	sort.SliceStable(cand, func(i, j int) bool {
		ci, cj := cand[i], cand[j]
		if valid[ci] != valid[cj] {
			return valid[ci]
		}

		return moles[ci] > moles[cj]
	})

	// Stage 4: working matrix restricted to the active element rows.
	na := len(active)
	w := mat.NewDense(na, nSp, nil)
	var norm float64
	for r, el := range active {
		for k := 0; k < nSp; k++ {
			v := mix.NAtoms(k, el)
			w.Set(r, k, v)
			if a := math.Abs(v); a > norm {
				norm = a
			}
		}
	}
	thresh := o.PivotTol * norm

	// Stage 5: pivoted elimination in candidate preference order. Each
	// accepted column pins one active element row; rejected columns are
	// linearly dependent on the components chosen so far.
	comps := make([]int, 0, na)
	pinnedRow := make([]int, 0, na)
	rowUsed := make([]bool, na)
	chosen := make([]bool, nSp)
	usedZero := false

	for slot := 0; slot < na; slot++ {
		found := false
		for _, k := range cand {
			if chosen[k] {
				continue
			}

			// Largest residual entry of column k over unpinned rows.
			pr, pv := -1, 0.0
			for r := 0; r < na; r++ {
				if rowUsed[r] {
					continue
				}
				if a := math.Abs(w.At(r, k)); a > pv {
					pr, pv = r, a
				}
			}
			if pv < thresh {
				continue
			}

			// Accept: zero row pr out of every other column so later
			// residuals exclude the direction this component covers.
			piv := w.At(pr, k)
			for c := 0; c < nSp; c++ {
				if c == k {
					continue
				}
				f := w.At(pr, c) / piv
				if f == 0 {
					continue
				}
				for r := 0; r < na; r++ {
					w.Set(r, c, w.At(r, c)-f*w.At(r, k))
				}
				w.Set(pr, c, 0)
			}

			comps = append(comps, k)
			pinnedRow = append(pinnedRow, pr)
			rowUsed[pr] = true
			chosen[k] = true
			if moles[k] <= 0 {
				usedZero = true
			}
			found = true

			break
		}
		if !found {
			for r := 0; r < na; r++ {
				if !rowUsed[r] {
					return nil, fmt.Errorf("Optimize: element %q: %w",
						mix.ElementName(active[r]), ErrDegenerateBasis)
				}
			}
		}
	}

	// Stage 6: assemble the species and element permutations.
	speciesPerm := make([]int, 0, nSp)
	speciesPerm = append(speciesPerm, comps...)
	for k := 0; k < nSp; k++ {
		if !chosen[k] {
			speciesPerm = append(speciesPerm, k)
		}
	}
	elemPerm := make([]int, 0, nEl)
	for _, r := range pinnedRow {
		elemPerm = append(elemPerm, active[r])
	}
	elemPerm = append(elemPerm, dropped...)

	b := &Basis{
		Species:           speciesPerm,
		Elements:          elemPerm,
		NComponents:       na,
		UsedZeroedSpecies: usedZero,
	}

	// Stage 7: formation reactions A_C·ν_j = a_j via LU over the
	// component submatrix; species touching a dropped element are inert
	// and keep a zero row.
	nnc := nSp - na
	b.Inert = make([]bool, nnc)
	if nnc == 0 {
		return b, nil
	}
	ac := mat.NewDense(na, na, nil)
	for r, el := range active {
		for c, k := range comps {
			ac.Set(r, c, mix.NAtoms(k, el))
		}
	}
	var lu mat.LU
	lu.Factorize(ac)

	b.ReactionMatrix = mat.NewDense(nnc, na, nil)
	aj := mat.NewVecDense(na, nil)
	nu := mat.NewVecDense(na, nil)
	for j, k := range speciesPerm[na:] {
		inert := false
		for _, el := range dropped {
			if mix.NAtoms(k, el) != 0 {
				inert = true

				break
			}
		}
		if inert {
			b.Inert[j] = true

			continue
		}

		for r, el := range active {
			aj.SetVec(r, mix.NAtoms(k, el))
		}
		if err := lu.SolveVecTo(nu, false, aj); err != nil {
			return nil, fmt.Errorf("Optimize: species %q: %w",
				mix.SpeciesName(k), ErrDegenerateBasis)
		}
		for c := 0; c < na; c++ {
			b.ReactionMatrix.Set(j, c, nu.AtVec(c))
		}
	}

	return b, nil
}
