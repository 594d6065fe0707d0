package gaussian

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const KCALHT = 627.5091809 // kcal/mol per hartree

// RelativeEnergies makes the values in energies relative to their
// minimum and converts them to kcal/mol.
func RelativeEnergies(energies []float64) []float64 {
	if len(energies) == 0 {
		return nil
	}
	min := floats.Min(energies)
	ret := make([]float64, len(energies))
	for i, e := range energies {
		ret[i] = (e - min) * KCALHT
	}
	return ret
}

// FormatBatchSummary renders the per-file final-energy table printed
// after a batch run. Files without an SCF energy are left out; an
// empty table yields "".
func FormatBatchSummary(results []FileResult) string {
	var (
		with     []FileResult
		energies []float64
	)
	for _, r := range results {
		if r.HasEnergy {
			with = append(with, r)
			energies = append(energies, r.FinalEnergy)
		}
	}
	if len(with) == 0 {
		return ""
	}
	rel := RelativeEnergies(energies)
	var b strings.Builder
	fmt.Fprintf(&b, "%-30s%20s%14s\n",
		"File", "Final E (Hartree)", "ΔE (kcal/mol)")
	for i, r := range with {
		fmt.Fprintf(&b, "%-30s%20.6f%14.2f\n",
			r.Name, r.FinalEnergy, rel[i])
	}
	return b.String()
}
