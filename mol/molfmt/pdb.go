package molfmt

import (
	"strings"

	"github.com/andrew-torda/labogrid/mol/cmmn"
)

// Columns of x, y and z in ATOM and HETATM records, counting from zero,
// end exclusive. In the PDB documentation they are 31-38, 39-46, 47-54.
// Neighbouring fields can run into the numbers without a space, so
// splitting on white space is not safe.
const (
	xStart = 30
	yStart = 38
	zStart = 46
	zEnd   = 54
)

// pdbFormat reads PDB and PDBQT. The two only differ in columns after
// the coordinates, which we do not look at.
type pdbFormat struct {
	name string
	ext  string
}

func (p pdbFormat) Name() string { return p.name }
func (p pdbFormat) Ext() string  { return p.ext }

// isAtomRec says if the first word of a line makes it an atom record
func isAtomRec(s string) bool {
	w := firstToken(s)
	return w == "ATOM" || w == "HETATM"
}

// Extract reads every ATOM and HETATM record and ignores all other lines.
func (p pdbFormat) Extract(lines []string) (*cmmn.CoordSet, error) {
	var xyzS cmmn.XyzSl
	for i, line := range lines {
		if !isAtomRec(line) {
			continue
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) < zEnd {
			return nil, lineErr(p.name, lines, i, "atom record too short for coordinates", nil)
		}
		f := [3]string{
			strings.TrimSpace(line[xStart:yStart]),
			strings.TrimSpace(line[yStart:zStart]),
			strings.TrimSpace(line[zStart:zEnd]),
		}
		xyz, axis, err := xyzFromFields(f)
		if err != nil {
			return nil, badCoord(p.name, lines, i, axis, f[axis], err)
		}
		xyzS = append(xyzS, xyz)
	}
	return finish(p.name, xyzS)
}
