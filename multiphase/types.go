package multiphase

import "errors"

// Sentinel errors returned by Mixture operations. All are wrapped with
// operation context via fmt.Errorf("...: %w", err); match with errors.Is.
var (
	// ErrNoPhases is returned by Init on a mixture with no registered phases.
	ErrNoPhases = errors.New("multiphase: mixture has no phases")

	// ErrNilPhase is returned by AddPhase / AddPhases for a nil phase handle.
	ErrNilPhase = errors.New("multiphase: nil phase")

	// ErrSealed is returned by AddPhase / AddPhases after Init has sealed
	// the mixture.
	ErrSealed = errors.New("multiphase: mixture already initialized")

	// ErrNotInitialized is returned by operations that need the global
	// tables built by Init.
	ErrNotInitialized = errors.New("multiphase: mixture not initialized")

	// ErrPhaseIndex is returned for a phase index outside [0, NPhases).
	ErrPhaseIndex = errors.New("multiphase: phase index out of range")

	// ErrSpeciesNotFound is returned by SetMolesByName for a name that
	// matches no registered species.
	ErrSpeciesNotFound = errors.New("multiphase: species name not found")

	// ErrLengthMismatch is returned when a caller-supplied slice does not
	// match the expected species or phase count.
	ErrLengthMismatch = errors.New("multiphase: slice length mismatch")

	// ErrNegativeMoles is returned by mole setters for negative or
	// non-finite amounts.
	ErrNegativeMoles = errors.New("multiphase: negative moles")
)

// Temperature bounds reported by MinTemp/MaxTemp when no registered
// solution phase constrains the range (stoichiometric single-species
// phases never do).
const (
	noLimitMinTemp = 1.0
	noLimitMaxTemp = 1.0e5
)
