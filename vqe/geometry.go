package vqe

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Atom is one atom of a molecular geometry, coordinates in Angstrom.
type Atom struct {
	Element string
	X, Y, Z float64
}

// FormatElementName normalizes a chemical element name to its canonical
// capitalization (first letter upper, rest lower). Element lookup tables
// downstream are case sensitive: "Li" works where "li" and "LI" do not.
func FormatElementName(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("vqe: empty element name")
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:]), nil
}

// ParseGeometry converts an inline molecular geometry into atoms. Each line
// holds an element name and three coordinates; parsing stops at the first
// line that does not have four fields, and lines with unparsable
// coordinates are skipped.
func ParseGeometry(geometry string) ([]Atom, error) {
	var atoms []Atom
	for _, line := range strings.Split(geometry, "\n") {
		words := strings.Fields(line)
		if len(words) != 4 {
			break
		}
		element, err := FormatElementName(words[0])
		if err != nil {
			return nil, err
		}
		x, errX := strconv.ParseFloat(words[1], 64)
		y, errY := strconv.ParseFloat(words[2], 64)
		z, errZ := strconv.ParseFloat(words[3], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		atoms = append(atoms, Atom{Element: element, X: x, Y: y, Z: z})
	}
	return atoms, nil
}

// ReadXYZ reads a molecular structure in XYZ format
// (https://en.wikipedia.org/wiki/XYZ_file_format) and returns the
// coordinate lines and the comment line. Units are Angstrom.
func ReadXYZ(name string) (geometry, comment string, err error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", "", err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return "", "", fmt.Errorf("vqe: malformed xyz file %s", name)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return "", "", fmt.Errorf("vqe: malformed atom count in %s: %w", name, err)
	}
	if len(lines) < 2+natoms {
		return "", "", fmt.Errorf("vqe: xyz file %s truncated: want %d atoms", name, natoms)
	}
	comment = strings.TrimSpace(lines[1])
	geometry = strings.Join(lines[2:2+natoms], "\n")
	return geometry, comment, nil
}

// GeometryAtoms resolves the geometry parameter into atoms. If the
// parameter names an .xyz file the file is read and its comment line is
// recorded as the description; otherwise the parameter is parsed as an
// inline geometry string.
func (q *QC) GeometryAtoms() ([]Atom, error) {
	if q.Geometry == "" {
		return nil, fmt.Errorf("vqe: geometry parameter is empty")
	}
	if strings.HasSuffix(q.Geometry, ".xyz") {
		geometry, comment, err := ReadXYZ(q.Geometry)
		if err != nil {
			return nil, err
		}
		q.Description = comment
		return ParseGeometry(geometry)
	}
	return ParseGeometry(q.Geometry)
}
