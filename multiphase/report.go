package multiphase

import (
	"fmt"
	"strings"
)

// Report renders a plain-text snapshot of the mixture: shared state,
// per-phase mole totals and compositions, and element abundances.
// Intended for logs and debugging, not for parsing.
func (m *Mixture) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Mixture: %d phases, %d species, %d elements\n",
		m.NPhases(), m.NSpecies(), m.NElements())
	fmt.Fprintf(&b, "  T = %.6g K, P = %.6g Pa, total = %.6g kmol\n",
		m.temp, m.press, m.TotalMoles())
	if !m.sealed {
		b.WriteString("  (not initialized)\n")

		return b.String()
	}

	for p, ph := range m.phases {
		note := ""
		if !m.tempOK[p] {
			note = fmt.Sprintf("  [T outside %g..%g K]", ph.MinTemp(), ph.MaxTemp())
		}
		fmt.Fprintf(&b, "\n  phase %q: %.6g kmol%s\n", ph.Name(), m.moles[p], note)
		for k := m.start[p]; k < m.end(p); k++ {
			fmt.Fprintf(&b, "    %-16s x = %-12.6g n = %.6g kmol\n",
				m.spNames[k], m.x[k], m.x[k]*m.moles[p])
		}
	}

	m.ensureAbundances()
	b.WriteString("\n  elements:\n")
	for el, name := range m.elemNames {
		fmt.Fprintf(&b, "    %-4s %.6g kmol\n", name, m.abund[el])
	}

	return b.String()
}

// String implements fmt.Stringer via Report.
func (m *Mixture) String() string { return m.Report() }
