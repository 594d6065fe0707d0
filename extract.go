package gaussian

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

var (
	scfRe  = regexp.MustCompile(`SCF Done:.*=\s*(-?\d+\.\d+)`)
	occRe  = regexp.MustCompile(`Alpha\s+occ\.\s+eigenvalues\s+--\s+(.*)`)
	virtRe = regexp.MustCompile(`Alpha\s+virt\.\s+eigenvalues\s+--\s+(.*)`)
)

// ExtractEnergies returns every SCF energy in the file, in order of
// appearance. A line that carries the SCF marker but no parseable
// value contributes nothing.
func ExtractEnergies(lines []string) (ret []float64) {
	for _, line := range lines {
		if !strings.Contains(line, "SCF Done") {
			continue
		}
		m := scfRe.FindStringSubmatch(line)
		if m == nil {
			log.Printf("skipping malformed SCF line %q", line)
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			log.Printf("skipping malformed SCF value %q", m[1])
			continue
		}
		ret = append(ret, v)
	}
	return
}

// ExtractGeometry returns the last complete standard-orientation
// block in the file, nil if there is none. Later optimization steps
// supersede earlier ones, so each valid block replaces the previous
// one. A block with a malformed row is discarded whole and the scan
// resumes at the next header.
//
// The standard orientation layout is a header line, a dashed rule,
// two column-header lines, a second rule, the coordinate rows, and a
// closing rule. Each row is center number, atomic number, atomic
// type, then x, y, z.
func ExtractGeometry(lines []string) []Atom {
	var (
		last    []Atom
		current []Atom
		inBlock bool
		rules   int
	)
	flush := func() {
		if len(current) > 0 {
			last = current
		}
		inBlock = false
	}
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Standard orientation"):
			inBlock = true
			rules = 0
			current = nil
		case !inBlock:
		case isRule(line):
			rules++
			if rules >= 3 {
				flush()
			}
		case strings.Contains(line, "Rotational constants"):
			flush()
		case rules >= 2:
			atom, ok := parseAtomRow(line)
			if !ok {
				log.Printf("discarding geometry block at bad row %q", line)
				current = nil
				inBlock = false
				continue
			}
			current = append(current, atom)
		}
	}
	if inBlock && rules >= 2 {
		// file truncated inside a coordinate table; keep the
		// rows that parsed cleanly
		flush()
	}
	return last
}

func isRule(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "----")
}

func parseAtomRow(line string) (Atom, bool) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return Atom{}, false
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return Atom{}, false
	}
	num, err := strconv.Atoi(fields[1])
	if err != nil {
		return Atom{}, false
	}
	var xyz [3]float64
	for i, f := range fields[3:] {
		xyz[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return Atom{}, false
		}
	}
	return Atom{
		AtomicNumber: num,
		X:            xyz[0],
		Y:            xyz[1],
		Z:            xyz[2],
	}, true
}

// ExtractFrequencies returns one profile of vibrational frequencies
// per "Harmonic frequencies" section. Frequencies arrive up to three
// per "Frequencies --" line; within a profile they are flattened left
// to right, top to bottom. A "Frequencies --" line before any section
// header opens an implicit profile so truncated files still report
// their modes.
func ExtractFrequencies(lines []string) (ret [][]float64) {
	var current []float64
	var open bool
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Harmonic frequencies"):
			if open {
				ret = append(ret, current)
			}
			current = nil
			open = true
		case strings.Contains(line, "Frequencies --"):
			open = true
			rest := strings.SplitN(line, "--", 2)[1]
			for _, f := range strings.Fields(rest) {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					log.Printf("skipping malformed frequency %q", f)
					continue
				}
				current = append(current, v)
			}
		}
	}
	if open {
		ret = append(ret, current)
	}
	return
}

// ExtractRoute returns the route section: the first line starting
// with "#" plus its continuation lines, joined with single spaces and
// trimmed. The route is echoed more than once in an output file; the
// first occurrence wins.
func ExtractRoute(lines []string) string {
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "#") {
			continue
		}
		parts := []string{t}
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || strings.HasPrefix(next, "----") {
				break
			}
			parts = append(parts, next)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// ExtractElectronic collects the electronic-structure summary: the
// electronic state, the charge/multiplicity line, and the alpha
// occupied/virtual orbital eigenvalue lines. The last occurrence of
// each label wins.
func ExtractElectronic(lines []string) []Field {
	var ret []Field
	for _, line := range lines {
		switch {
		case strings.Contains(strings.ToLower(line), "electronic state"):
			ret = setField(ret, "Electronic State", strings.TrimSpace(line))
		case strings.Contains(line, "Charge =") &&
			strings.Contains(line, "Multiplicity ="):
			ret = setField(ret, "Charge/Multiplicity", strings.TrimSpace(line))
		case strings.Contains(line, "Alpha  occ. eigenvalues"):
			if m := occRe.FindStringSubmatch(line); m != nil {
				ret = setField(ret, "Occupied Eigenvalues",
					strings.TrimSpace(m[1]))
			}
		case strings.Contains(line, "Alpha virt. eigenvalues"):
			if m := virtRe.FindStringSubmatch(line); m != nil {
				ret = setField(ret, "Virtual Eigenvalues",
					strings.TrimSpace(m[1]))
			}
		}
	}
	return ret
}

func setField(fields []Field, label, value string) []Field {
	for i := range fields {
		if fields[i].Label == label {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, Field{Label: label, Value: value})
}
