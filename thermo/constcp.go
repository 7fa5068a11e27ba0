package thermo

import (
	"fmt"
	"math"
)

// ConstCp is a constant-heat-capacity standard-state parameterization:
// the species' molar heat capacity is treated as independent of
// temperature, anchored by reference values at T0.
//
//	h(T)  = H0 + Cp·(T − T0)
//	s(T)  = S0 + Cp·ln(T/T0)
//	μ°(T) = h(T) − T·s(T)
//
// H0 and S0 must include the formation contribution (enthalpy of
// formation and absolute entropy at T0) for equilibrium compositions to
// be meaningful. The zero value is NOT valid: T0 must be positive.
type ConstCp struct {
	// T0 is the anchor temperature [K], conventionally RefTemp.
	T0 float64

	// H0 is the molar enthalpy at T0 [J/kmol].
	H0 float64

	// S0 is the molar entropy at T0 [J/(kmol·K)].
	S0 float64

	// Cp is the constant molar heat capacity [J/(kmol·K)].
	Cp float64
}

// Enthalpy returns the molar enthalpy at T [J/kmol].
func (c ConstCp) Enthalpy(temp float64) float64 {
	return c.H0 + c.Cp*(temp-c.T0)
}

// Entropy returns the molar entropy at T [J/(kmol·K)].
func (c ConstCp) Entropy(temp float64) float64 {
	return c.S0 + c.Cp*math.Log(temp/c.T0)
}

// Gibbs returns the standard-state chemical potential μ°(T) [J/kmol].
func (c ConstCp) Gibbs(temp float64) float64 {
	return c.Enthalpy(temp) - temp*c.Entropy(temp)
}

// validate reports ErrBadThermo when the parameterization is unusable:
// non-positive anchor temperature, negative heat capacity, or any
// non-finite coefficient.
func (c ConstCp) validate() error {
	if c.T0 <= 0 {
		return fmt.Errorf("T0 = %g: %w", c.T0, ErrBadThermo)
	}
	if c.Cp < 0 {
		return fmt.Errorf("Cp = %g: %w", c.Cp, ErrBadThermo)
	}
	for _, v := range [4]float64{c.T0, c.H0, c.S0, c.Cp} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite coefficient: %w", ErrBadThermo)
		}
	}

	return nil
}
