package thermo

import "fmt"

// Stoich is a single-species incompressible condensed phase (a pure
// solid or liquid of fixed stoichiometry). Its composition is the fixed
// vector [1], its activity is unity, and its chemical potential carries
// a constant-molar-volume pressure correction:
//
//	μ(T, P) = μ°(T) + v°·(P − P°)
//
// Stoichiometric phases may be parameterized only near their stability
// region, which is why the mixture layer excludes them when intersecting
// phase validity ranges.
type Stoich struct {
	name    string
	elems   []Element
	species []Species
	thermo  ConstCp
	molarV  float64

	minTemp, maxTemp float64

	temp, press float64
}

var _ Phase = (*Stoich)(nil)

// StoichOption adjusts optional Stoich construction parameters.
type StoichOption func(*Stoich)

// WithStoichTempLimits overrides the default validity range
// [DefaultMinTemp, DefaultMaxTemp].
func WithStoichTempLimits(minTemp, maxTemp float64) StoichOption {
	return func(s *Stoich) {
		s.minTemp, s.maxTemp = minTemp, maxTemp
	}
}

// NewStoich builds a pure condensed phase holding exactly the one given
// species with constant molar volume molarV [m³/kmol]. The initial state
// is RefTemp, OneAtm.
//
// Errors: ErrNoElements, ErrDuplicateElement, ErrUnknownElement,
// ErrBadThermo, ErrBadMolarVolume, ErrBadTempRange.
func NewStoich(name string, elems []Element, sp SpeciesData, molarV float64, opts ...StoichOption) (*Stoich, error) {
	if err := validateInventory(elems, []SpeciesData{sp}); err != nil {
		return nil, fmt.Errorf("NewStoich(%q): %w", name, err)
	}
	if molarV <= 0 {
		return nil, fmt.Errorf("NewStoich(%q): v = %g: %w", name, molarV, ErrBadMolarVolume)
	}

	species, th := copySpecies([]SpeciesData{sp})
	st := &Stoich{
		name:    name,
		elems:   copyElements(elems),
		species: species,
		thermo:  th[0],
		molarV:  molarV,
		minTemp: DefaultMinTemp,
		maxTemp: DefaultMaxTemp,
		temp:    RefTemp,
		press:   OneAtm,
	}
	for _, opt := range opts {
		opt(st)
	}
	if err := validateTempRange(st.minTemp, st.maxTemp); err != nil {
		return nil, fmt.Errorf("NewStoich(%q): %w", name, err)
	}

	return st, nil
}

// Name returns the phase label.
func (s *Stoich) Name() string { return s.name }

// Elements returns the declared elements.
func (s *Stoich) Elements() []Element { return s.elems }

// Species returns the single-species list.
func (s *Stoich) Species() []Species { return s.species }

// NSpecies returns 1.
func (s *Stoich) NSpecies() int { return 1 }

// MinTemp returns the lower bound of the validity range [K].
func (s *Stoich) MinTemp() float64 { return s.minTemp }

// MaxTemp returns the upper bound of the validity range [K].
func (s *Stoich) MaxTemp() float64 { return s.maxTemp }

// Temperature returns the current temperature [K].
func (s *Stoich) Temperature() float64 { return s.temp }

// Pressure returns the current pressure [Pa].
func (s *Stoich) Pressure() float64 { return s.press }

// SetState sets temperature and pressure; the composition argument is
// validated for shape but its value is immaterial (always renormalized
// to [1]).
func (s *Stoich) SetState(temp, press float64, x []float64) error {
	if _, err := checkState(temp, press, x, 1); err != nil {
		return fmt.Errorf("Stoich(%q).SetState: %w", s.name, err)
	}
	s.temp, s.press = temp, press

	return nil
}

// MoleFractions writes the fixed composition [1] into dst.
func (s *Stoich) MoleFractions(dst []float64) error {
	if len(dst) != 1 {
		return fmt.Errorf("Stoich(%q).MoleFractions: %w", s.name, ErrBufferLength)
	}
	dst[0] = 1

	return nil
}

// ChemPotentials writes μ = μ°(T) + v°·(P − P°); a pure phase has unit
// activity, so this equals the standard-state value.
func (s *Stoich) ChemPotentials(mu []float64) error {
	return s.StandardChemPotentials(mu)
}

// StandardChemPotentials writes μ°(T) + v°·(P − P°) into mu0.
func (s *Stoich) StandardChemPotentials(mu0 []float64) error {
	if len(mu0) != 1 {
		return fmt.Errorf("Stoich(%q).StandardChemPotentials: %w", s.name, ErrBufferLength)
	}
	mu0[0] = s.thermo.Gibbs(s.temp) + s.molarV*(s.press-RefPressure)

	return nil
}

// EnthalpyMolar returns h(T) + v°·(P − P°).
func (s *Stoich) EnthalpyMolar() float64 {
	return s.thermo.Enthalpy(s.temp) + s.molarV*(s.press-RefPressure)
}

// EntropyMolar returns s(T); the incompressible volume contributes none.
func (s *Stoich) EntropyMolar() float64 {
	return s.thermo.Entropy(s.temp)
}

// CpMolar returns the constant c_p.
func (s *Stoich) CpMolar() float64 { return s.thermo.Cp }

// GibbsMolar returns h − T·s, which coincides with the chemical potential.
func (s *Stoich) GibbsMolar() float64 {
	return s.EnthalpyMolar() - s.temp*s.EntropyMolar()
}

// MolarVolume returns the constant v°.
func (s *Stoich) MolarVolume() float64 { return s.molarV }
