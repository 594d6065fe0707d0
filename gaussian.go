// Package gaussian extracts structured results from Gaussian 09
// output files: SCF energies, optimized geometries, vibrational
// frequencies, and calculation metadata. Each file is read fully into
// memory, scanned once per category, and rendered into four text
// reports.
package gaussian

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Errors
var (
	ErrFileNotFound = errors.New("output file not found")
)

// Atom is one row of a standard-orientation coordinate table.
// Coordinates are in Angstroms.
type Atom struct {
	AtomicNumber int
	X, Y, Z      float64
}

// Field is one labeled entry of the electronic-structure summary.
// Fields keep their extraction order, which a map would lose.
type Field struct {
	Label string
	Value string
}

// Result holds everything extracted from one output file. It is
// populated once by ParseLines and not modified afterwards.
type Result struct {
	// Energies are the SCF energies in Hartrees, one per SCF
	// cycle report, in file order.
	Energies []float64
	// Geometry is the last complete standard orientation found in
	// the file, nil if none.
	Geometry []Atom
	// FreqProfiles holds one profile of vibrational frequencies
	// (cm-1) per frequency calculation in the file.
	FreqProfiles [][]float64
	// Route is the calculation's route section, "" if not found.
	Route string
	// Electronic lists electronic-structure fields such as the
	// electronic state and orbital eigenvalues.
	Electronic []Field
}

// Frequencies flattens the frequency profiles into the canonical mode
// order: profile by profile, left to right within each line.
func (r Result) Frequencies() (ret []float64) {
	for _, p := range r.FreqProfiles {
		ret = append(ret, p...)
	}
	return
}

// FinalEnergy returns the last SCF energy, the converged value for an
// optimization. ok is false when the file reported no energies.
func (r Result) FinalEnergy() (energy float64, ok bool) {
	if len(r.Energies) == 0 {
		return 0, false
	}
	return r.Energies[len(r.Energies)-1], true
}

// Empty reports whether no category of data was extracted at all.
func (r Result) Empty() bool {
	return len(r.Energies) == 0 &&
		len(r.Geometry) == 0 &&
		len(r.Frequencies()) == 0 &&
		r.Route == "" &&
		len(r.Electronic) == 0
}

// ReadLines loads filename into memory as a slice of lines.
func ReadLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseLines runs every extractor over lines and aggregates their
// results. Missing sections leave their categories empty; no shape of
// content is an error.
func ParseLines(lines []string) Result {
	return Result{
		Energies:     ExtractEnergies(lines),
		Geometry:     ExtractGeometry(lines),
		FreqProfiles: ExtractFrequencies(lines),
		Route:        ExtractRoute(lines),
		Electronic:   ExtractElectronic(lines),
	}
}

// Analyzer ties one Gaussian output file to its extracted Result.
type Analyzer struct {
	Filename string
	Result   Result
}

func NewAnalyzer(filename string) *Analyzer {
	return &Analyzer{Filename: filename}
}

// ReadFile reads and parses the whole output file. Only an unreadable
// file is an error.
func (a *Analyzer) ReadFile() error {
	lines, err := ReadLines(a.Filename)
	if err != nil {
		return err
	}
	a.Result = ParseLines(lines)
	return nil
}

// Categories are the four report kinds written per input file, in the
// order they are saved.
var Categories = []string{"energies", "geometry", "frequencies", "summary"}

// SaveResults writes the four report files to outdir, creating it if
// needed. Names follow {base}_{category}_{timestamp}.txt so repeated
// runs keep a history.
func (a *Analyzer) SaveResults(outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	base := TrimExt(filepath.Base(a.Filename))
	stamp := time.Now().Format("20060102_150405")
	bodies := map[string]string{
		"energies":    FormatEnergies(a.Result),
		"geometry":    FormatGeometry(a.Result),
		"frequencies": FormatFrequencies(a.Result),
		"summary":     FormatSummary(a.Result),
	}
	for _, cat := range Categories {
		name := fmt.Sprintf("%s_%s_%s.txt", base, cat, stamp)
		err := os.WriteFile(
			filepath.Join(outdir, name), []byte(bodies[cat]), 0644,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func TrimExt(filename string) string {
	return filename[:len(filename)-len(path.Ext(filename))]
}
