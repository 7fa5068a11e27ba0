package thermo

import (
	"fmt"
	"math"
)

// IdealGas is a multi-species ideal-gas solution phase.
//
// The standard state of species k is the pure ideal gas at the current
// temperature and pressure, so
//
//	μ°_k(T, P) = g_k(T) + R·T·ln(P/P°)
//	μ_k        = μ°_k(T, P) + R·T·ln(x_k)
//
// with g_k the ConstCp standard Gibbs function at P°. Mole fractions are
// floored at Tiny inside logarithms, keeping potentials of absent
// species finite (large and positive, so the solver drives them in, not
// through, zero).
type IdealGas struct {
	name    string
	elems   []Element
	species []Species
	thermo  []ConstCp

	minTemp, maxTemp float64

	temp, press float64
	x           []float64
}

// compile-time contract check
var _ Phase = (*IdealGas)(nil)

// GasOption adjusts optional IdealGas construction parameters.
type GasOption func(*IdealGas)

// WithTempLimits overrides the default validity range
// [DefaultMinTemp, DefaultMaxTemp].
func WithTempLimits(minTemp, maxTemp float64) GasOption {
	return func(g *IdealGas) {
		g.minTemp, g.maxTemp = minTemp, maxTemp
	}
}

// NewIdealGas builds an ideal-gas phase from its element and species
// declarations. The initial state is RefTemp, OneAtm, uniform
// composition. Inputs are copied; the caller keeps ownership of the
// slices it passed.
//
// Errors: ErrNoElements, ErrNoSpecies, ErrDuplicateElement,
// ErrDuplicateSpecies, ErrUnknownElement, ErrBadThermo, ErrBadTempRange,
// each wrapped with the offending name.
func NewIdealGas(name string, elems []Element, species []SpeciesData, opts ...GasOption) (*IdealGas, error) {
	if err := validateInventory(elems, species); err != nil {
		return nil, fmt.Errorf("NewIdealGas(%q): %w", name, err)
	}

	sp, th := copySpecies(species)
	g := &IdealGas{
		name:    name,
		elems:   copyElements(elems),
		species: sp,
		thermo:  th,
		minTemp: DefaultMinTemp,
		maxTemp: DefaultMaxTemp,
		temp:    RefTemp,
		press:   OneAtm,
		x:       make([]float64, len(sp)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := validateTempRange(g.minTemp, g.maxTemp); err != nil {
		return nil, fmt.Errorf("NewIdealGas(%q): %w", name, err)
	}

	// Uniform starting composition.
	for i := range g.x {
		g.x[i] = 1.0 / float64(len(g.x))
	}

	return g, nil
}

// Name returns the phase label.
func (g *IdealGas) Name() string { return g.name }

// Elements returns the declared elements. The slice is owned by the phase.
func (g *IdealGas) Elements() []Element { return g.elems }

// Species returns the declared species in phase-local index order.
func (g *IdealGas) Species() []Species { return g.species }

// NSpecies returns the species count.
func (g *IdealGas) NSpecies() int { return len(g.species) }

// MinTemp returns the lower bound of the validity range [K].
func (g *IdealGas) MinTemp() float64 { return g.minTemp }

// MaxTemp returns the upper bound of the validity range [K].
func (g *IdealGas) MaxTemp() float64 { return g.maxTemp }

// Temperature returns the current temperature [K].
func (g *IdealGas) Temperature() float64 { return g.temp }

// Pressure returns the current pressure [Pa].
func (g *IdealGas) Pressure() float64 { return g.press }

// SetState sets temperature, pressure and composition in one call.
// The composition is copied and renormalized to sum to one.
func (g *IdealGas) SetState(temp, press float64, x []float64) error {
	sum, err := checkState(temp, press, x, len(g.x))
	if err != nil {
		return fmt.Errorf("IdealGas(%q).SetState: %w", g.name, err)
	}

	g.temp, g.press = temp, press
	for i, v := range x {
		g.x[i] = v / sum
	}

	return nil
}

// MoleFractions writes the current composition into dst.
func (g *IdealGas) MoleFractions(dst []float64) error {
	if len(dst) != len(g.x) {
		return fmt.Errorf("IdealGas(%q).MoleFractions: %w", g.name, ErrBufferLength)
	}
	copy(dst, g.x)

	return nil
}

// ChemPotentials writes μ_k = μ°_k(T, P) + R·T·ln(max(x_k, Tiny)) into mu.
func (g *IdealGas) ChemPotentials(mu []float64) error {
	if err := g.StandardChemPotentials(mu); err != nil {
		return err
	}
	rt := GasConstant * g.temp
	for k, xk := range g.x {
		mu[k] += rt * math.Log(math.Max(xk, Tiny))
	}

	return nil
}

// StandardChemPotentials writes μ°_k(T, P) = g_k(T) + R·T·ln(P/P°) into mu0.
func (g *IdealGas) StandardChemPotentials(mu0 []float64) error {
	if len(mu0) != len(g.x) {
		return fmt.Errorf("IdealGas(%q).StandardChemPotentials: %w", g.name, ErrBufferLength)
	}
	logP := GasConstant * g.temp * math.Log(g.press/RefPressure)
	for k := range g.thermo {
		mu0[k] = g.thermo[k].Gibbs(g.temp) + logP
	}

	return nil
}

// EnthalpyMolar returns Σ x_k·h_k(T); ideal gases carry no pressure term.
func (g *IdealGas) EnthalpyMolar() float64 {
	var h float64
	for k, xk := range g.x {
		h += xk * g.thermo[k].Enthalpy(g.temp)
	}

	return h
}

// EntropyMolar returns Σ x_k·s_k(T) − R·ln(P/P°) − R·Σ x_k·ln(x_k):
// pure-species entropies, the pressure correction, and ideal mixing.
func (g *IdealGas) EntropyMolar() float64 {
	var s, mix float64
	for k, xk := range g.x {
		s += xk * g.thermo[k].Entropy(g.temp)
		if xk > Tiny {
			mix += xk * math.Log(xk)
		}
	}

	return s - GasConstant*math.Log(g.press/RefPressure) - GasConstant*mix
}

// CpMolar returns Σ x_k·c_p,k.
func (g *IdealGas) CpMolar() float64 {
	var cp float64
	for k, xk := range g.x {
		cp += xk * g.thermo[k].Cp
	}

	return cp
}

// GibbsMolar returns h − T·s at the current state.
func (g *IdealGas) GibbsMolar() float64 {
	return g.EnthalpyMolar() - g.temp*g.EntropyMolar()
}

// MolarVolume returns R·T/P.
func (g *IdealGas) MolarVolume() float64 {
	return GasConstant * g.temp / g.press
}

// checkState validates a (T, P, x) triple and returns the composition
// sum used for renormalization. Shared by every phase model.
func checkState(temp, press float64, x []float64, want int) (float64, error) {
	if temp <= 0 || math.IsNaN(temp) || math.IsInf(temp, 0) {
		return 0, fmt.Errorf("T = %g: %w", temp, ErrBadTemperature)
	}
	if press <= 0 || math.IsNaN(press) || math.IsInf(press, 0) {
		return 0, fmt.Errorf("P = %g: %w", press, ErrBadPressure)
	}
	if len(x) != want {
		return 0, fmt.Errorf("len(x) = %d, want %d: %w", len(x), want, ErrCompositionLength)
	}

	var sum float64
	for i, v := range x {
		if v < 0 {
			return 0, fmt.Errorf("x[%d] = %g: %w", i, v, ErrNegativeFraction)
		}
		sum += v
	}
	if sum <= 0 {
		return 0, ErrZeroComposition
	}

	return sum, nil
}
