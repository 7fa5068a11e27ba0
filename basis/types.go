package basis

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Optimize.
var (
	// ErrNilMixture indicates that a nil *multiphase.Mixture was passed.
	ErrNilMixture = errors.New("basis: mixture is nil")

	// ErrDegenerateBasis indicates that an element with nonzero abundance
	// has no linearly independent species column left to represent it.
	// The wrapping error names the element.
	ErrDegenerateBasis = errors.New("basis: no independent species for element")

	// ErrBadPivotTol indicates a non-positive pivot tolerance.
	ErrBadPivotTol = errors.New("basis: PivotTol must be positive")

	// ErrBadRelTol indicates a non-positive abundance cutoff.
	ErrBadRelTol = errors.New("basis: RelTol must be positive")
)

// Options configures the basis search.
//
// PivotTol – relative pivot acceptance threshold: a candidate column is
// accepted when its largest residual entry is at least PivotTol times
// the largest entry of the active atom matrix. Default 1e-10.
//
// RelTol – relative element-abundance cutoff: elements whose abundance
// is at most RelTol times the largest abundance count as absent and are
// dropped from the active set. Default 1e-14.
type Options struct {
	PivotTol float64
	RelTol   float64
}

// Option represents a functional option for configuring Optimize.
type Option func(*Options)

// WithPivotTol overrides the relative pivot acceptance threshold.
// Must be positive; non-positive values panic with ErrBadPivotTol.
func WithPivotTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadPivotTol.Error())
		}
		o.PivotTol = tol
	}
}

// WithRelTol overrides the relative element-abundance cutoff.
// Must be positive; non-positive values panic with ErrBadRelTol.
func WithRelTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadRelTol.Error())
		}
		o.RelTol = tol
	}
}

// DefaultOptions returns the Options used when no overrides are given.
func DefaultOptions() Options {
	return Options{
		PivotTol: 1e-10,
		RelTol:   1e-14,
	}
}

// Basis is the result of Optimize. It is valid for the species-mole
// vector it was computed from; drivers recompute it when that vector
// changes shape (a component driven to zero, a vanished phase).
type Basis struct {
	// Species is a permutation of the global species indices with the
	// NComponents component species first, in slot order; the remaining
	// entries are the noncomponents in ascending global index.
	Species []int

	// Elements is a permutation of the global element indices with the
	// NComponents active elements first; element Elements[c] is the
	// pivot element pinned by component Species[c]. Dropped
	// (zero-abundance) elements follow in ascending global index.
	Elements []int

	// NComponents is the rank of the active atom matrix: the number of
	// component species and of active elements.
	NComponents int

	// ReactionMatrix holds the formation-reaction coefficients: row j
	// gives ν such that species Species[NComponents+j] equals
	// Σ_c ν_c · Species[c] element-wise. Shape (len(Species) -
	// NComponents) × NComponents; nil when there are no noncomponents.
	// Rows of inert species are zero.
	ReactionMatrix *mat.Dense

	// Inert flags noncomponent rows whose species contain a dropped
	// element. No formation reaction can produce such a species without
	// creating absent atoms, so drivers must leave its amount untouched
	// (necessarily zero, or conservation was already violated).
	Inert []bool

	// UsedZeroedSpecies reports that at least one component carries zero
	// moles: every mole-bearing candidate for its slot was linearly
	// dependent on earlier components.
	UsedZeroedSpecies bool
}

// Components returns the component species as global indices, in slot
// order. The slice is a copy.
func (b *Basis) Components() []int {
	out := make([]int, b.NComponents)
	copy(out, b.Species[:b.NComponents])

	return out
}

// NonComponents returns the noncomponent species as global indices, in
// reaction-row order. The slice is a copy.
func (b *Basis) NonComponents() []int {
	out := make([]int, len(b.Species)-b.NComponents)
	copy(out, b.Species[b.NComponents:])

	return out
}

// IsComponent reports whether global species k is one of the components.
func (b *Basis) IsComponent(k int) bool {
	for _, c := range b.Species[:b.NComponents] {
		if c == k {
			return true
		}
	}

	return false
}
