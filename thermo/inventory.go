package thermo

import "fmt"

// SpeciesData bundles the bookkeeping identity of a species with its
// standard-state parameterization. Phase constructors consume slices of
// SpeciesData; the equilibrium layers only ever see the embedded Species.
type SpeciesData struct {
	Species

	// Thermo holds the standard-state model for this species.
	Thermo ConstCp
}

// validateInventory checks the element/species declarations shared by
// every phase constructor: non-empty lists, unique names, every atom-map
// key declared, and a usable ConstCp block per species.
func validateInventory(elems []Element, species []SpeciesData) error {
	if len(elems) == 0 {
		return ErrNoElements
	}
	if len(species) == 0 {
		return ErrNoSpecies
	}

	// Element names must be unique: they are the cross-phase merge key.
	known := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		if _, dup := known[e.Name]; dup {
			return fmt.Errorf("element %q: %w", e.Name, ErrDuplicateElement)
		}
		known[e.Name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(species))
	for _, sp := range species {
		if _, dup := seen[sp.Name]; dup {
			return fmt.Errorf("species %q: %w", sp.Name, ErrDuplicateSpecies)
		}
		seen[sp.Name] = struct{}{}

		for el := range sp.Atoms {
			if _, ok := known[el]; !ok {
				return fmt.Errorf("species %q, element %q: %w", sp.Name, el, ErrUnknownElement)
			}
		}
		if err := sp.Thermo.validate(); err != nil {
			return fmt.Errorf("species %q: %w", sp.Name, err)
		}
	}

	return nil
}

// validateTempRange checks 0 < min < max.
func validateTempRange(minTemp, maxTemp float64) error {
	if minTemp <= 0 || maxTemp <= minTemp {
		return fmt.Errorf("[%g, %g]: %w", minTemp, maxTemp, ErrBadTempRange)
	}

	return nil
}

// copyElements and copySpecies duplicate the constructor inputs so later
// mutation by the caller cannot reach phase state.
func copyElements(elems []Element) []Element {
	out := make([]Element, len(elems))
	copy(out, elems)

	return out
}

func copySpecies(species []SpeciesData) ([]Species, []ConstCp) {
	sp := make([]Species, len(species))
	th := make([]ConstCp, len(species))
	for i, sd := range species {
		atoms := make(map[string]float64, len(sd.Atoms))
		for el, n := range sd.Atoms {
			atoms[el] = n
		}
		sp[i] = Species{Name: sd.Name, Atoms: atoms, Charge: sd.Charge}
		th[i] = sd.Thermo
	}

	return sp, th
}
