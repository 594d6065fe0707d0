package gaussian

import (
	"fmt"
	"strings"
)

// FormatEnergies renders the SCF energy history, one step per line.
func FormatEnergies(r Result) string {
	var b strings.Builder
	b.WriteString("SCF Energies (Hartree):\n")
	if len(r.Energies) == 0 {
		b.WriteString("No SCF energies found\n")
		return b.String()
	}
	for i, e := range r.Energies {
		fmt.Fprintf(&b, "Step %d: %.6f\n", i+1, e)
	}
	return b.String()
}

// FormatGeometry renders the final optimized geometry as a
// fixed-width coordinate table.
func FormatGeometry(r Result) string {
	var b strings.Builder
	b.WriteString("Final Optimized Geometry (Angstroms):\n")
	if len(r.Geometry) == 0 {
		b.WriteString("No geometry found\n")
		return b.String()
	}
	b.WriteString("Atom    X           Y           Z\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, a := range r.Geometry {
		fmt.Fprintf(&b, "%4d  %10.6f %10.6f %10.6f\n",
			a.AtomicNumber, a.X, a.Y, a.Z)
	}
	return b.String()
}

// FormatFrequencies renders the flattened mode list and notes any
// imaginary (negative) frequencies.
func FormatFrequencies(r Result) string {
	var b strings.Builder
	b.WriteString("Vibrational Frequencies (cm-1):\n")
	freqs := r.Frequencies()
	if len(freqs) == 0 {
		b.WriteString("No frequencies found\n")
		return b.String()
	}
	var imag int
	for i, f := range freqs {
		fmt.Fprintf(&b, "Mode %3d: %10.2f\n", i+1, f)
		if f < 0 {
			imag++
		}
	}
	if imag > 0 {
		fmt.Fprintf(&b, "\nImaginary frequencies: %d\n", imag)
	}
	return b.String()
}

// FormatSummary renders the calculation summary: route section, final
// energy, and electronic-structure information.
func FormatSummary(r Result) string {
	var b strings.Builder
	b.WriteString("Gaussian 09 Calculation Summary\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	if r.Route != "" {
		b.WriteString("Route Section:\n")
		b.WriteString(r.Route + "\n\n")
	}
	if e, ok := r.FinalEnergy(); ok {
		fmt.Fprintf(&b, "Final Energy: %.6f Hartree\n\n", e)
	}
	if len(r.Electronic) > 0 {
		b.WriteString("Electronic Structure Information:\n")
		for _, f := range r.Electronic {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
		}
	}
	if r.Empty() {
		b.WriteString("No data found\n")
	}
	return b.String()
}
