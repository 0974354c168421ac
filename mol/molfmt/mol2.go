package molfmt

import (
	"strings"

	"github.com/andrew-torda/labogrid/mol/cmmn"
)

const (
	atomMarker = "@<TRIPOS>ATOM"
	bondMarker = "@<TRIPOS>BOND"
)

// mol2Format reads the first ATOM section of a Tripos mol2 file.
// The section runs up to the BOND marker. Atom lines are
// id name x y z type ...
type mol2Format struct{}

func (mol2Format) Name() string { return "MOL2" }
func (mol2Format) Ext() string  { return ".mol2" }

// findMarker returns the index of the first line at or after from whose
// first word is marker, or -1.
func findMarker(lines []string, from int, marker string) int {
	for i := from; i < len(lines); i++ {
		if firstToken(lines[i]) == marker {
			return i
		}
	}
	return -1
}

func (f mol2Format) Extract(lines []string) (*cmmn.CoordSet, error) {
	const name = "MOL2"
	start := findMarker(lines, 0, atomMarker)
	if start == -1 {
		return nil, fileErr(name, "no "+atomMarker+" section", nil)
	}
	start++
	end := findMarker(lines, start, bondMarker)
	if end == -1 {
		return nil, fileErr(name, "no "+bondMarker+" after "+atomMarker, nil)
	}

	xyzS := make(cmmn.XyzSl, 0, end-start)
	for i := start; i < end; i++ {
		w := strings.Fields(lines[i])
		if len(w) == 0 {
			continue
		}
		if len(w) < 5 {
			return nil, lineErr(name, lines, i, "atom line has fewer than 5 fields", nil)
		}
		xyz, axis, err := xyzFromFields([3]string{w[2], w[3], w[4]})
		if err != nil {
			return nil, badCoord(name, lines, i, axis, w[2+axis], err)
		}
		xyzS = append(xyzS, xyz)
	}
	return finish(name, xyzS)
}
