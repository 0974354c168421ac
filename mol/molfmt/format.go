// Package molfmt pulls atom coordinates out of the text of a structure
// file. Each supported format is a value implementing Format, so callers
// pick the format once and never branch on it again.
package molfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/andrew-torda/labogrid/mol/cmmn"
)

// Format knows where the atoms are in one kind of file.
type Format interface {
	Name() string // PDB, PDBQT, SDF, MOL2
	Ext() string  // file name extension, with the dot
	// Extract returns the coordinates of every atom record, in file
	// order. Any problem is returned as a *ParseError.
	Extract(lines []string) (*cmmn.CoordSet, error)
}

// The complete set of formats we can read
var (
	PDB   Format = pdbFormat{name: "PDB", ext: ".pdb"}
	PDBQT Format = pdbFormat{name: "PDBQT", ext: ".pdbqt"}
	SDF   Format = sdfFormat{}
	MOL2  Format = mol2Format{}
)

// All lists the formats in the order they appear in help text
var All = []Format{PDB, PDBQT, SDF, MOL2}

// ByExt finds the format for a file name extension like ".mol2".
// The match is case sensitive and the dot is needed.
func ByExt(ext string) (Format, bool) {
	for _, f := range All {
		if f.Ext() == ext {
			return f, true
		}
	}
	return nil, false
}

// firstToken returns the first white space delimited word or ""
// for a blank line.
func firstToken(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if i := strings.IndexFunc(s, unicode.IsSpace); i != -1 {
		return s[:i]
	}
	return s
}

// parseCoord turns one field into a number. Infinities and NaN are
// refused, since they would make nonsense of the box.
func parseCoord(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, cmmn.Error("not a finite number")
	}
	return x, nil
}

// xyzFromFields parses three fields into a coordinate, reporting
// which axis broke.
func xyzFromFields(f [3]string) (cmmn.Xyz, int, error) {
	var v [3]float64
	for i, s := range f {
		x, err := parseCoord(s)
		if err != nil {
			return cmmn.Xyz{}, i, err
		}
		v[i] = x
	}
	return cmmn.Xyz{X: v[0], Y: v[1], Z: v[2]}, 0, nil
}

// finish turns the collected coordinates into a CoordSet, complaining
// if there were none.
func finish(format string, xyzS cmmn.XyzSl) (*cmmn.CoordSet, error) {
	cs, err := cmmn.FromXyz(xyzS)
	if err != nil {
		return nil, fileErr(format, "no atom records", err)
	}
	return cs, nil
}

// badCoord is the error for a field that is not a number
func badCoord(format string, lines []string, ndx, axis int, field string, err error) *ParseError {
	desc := "bad " + cmmn.AxisNames[axis] + " coordinate " + strconv.Quote(field)
	return lineErr(format, lines, ndx, desc, err)
}
