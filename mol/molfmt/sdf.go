package molfmt

import (
	"strconv"
	"strings"

	"github.com/andrew-torda/labogrid/mol/cmmn"
)

// sdfFormat reads the first molecule of an MDL molfile or SD file.
// The header ends at the first blank line. The counts line follows,
// then one line per atom with x, y, z as the first three words.
type sdfFormat struct{}

func (sdfFormat) Name() string { return "SDF" }
func (sdfFormat) Ext() string  { return ".sdf" }

// atomCount gets the number of atoms from a counts line, normally the
// first word. V2000 keeps the atom count in columns 1-3 and the bond count
// in 4-6, so big molecules can give "100101" for 100 atoms and 101 bonds.
// The columns are only used when the first word is longer than three
// characters and asks for more atom lines than there are.
func atomCount(s string, avail int) (int, error) {
	tok := firstToken(s)
	n, err := strconv.Atoi(tok)
	if err == nil && n <= avail {
		return n, nil
	}
	if len(tok) > 3 && len(s) >= 6 {
		ncol, e1 := strconv.Atoi(strings.TrimSpace(s[0:3]))
		_, e2 := strconv.Atoi(strings.TrimSpace(s[3:6]))
		if e1 == nil && e2 == nil && ncol <= avail {
			return ncol, nil
		}
	}
	return n, err
}

func (f sdfFormat) Extract(lines []string) (*cmmn.CoordSet, error) {
	const name = "SDF"
	blank := -1
	for i, line := range lines {
		if firstToken(line) == "" {
			blank = i
			break
		}
	}
	if blank == -1 {
		return nil, fileErr(name, "no blank line at end of header", nil)
	}
	cntNdx := blank + 1
	if cntNdx >= len(lines) {
		return nil, fileErr(name, "no counts line after header", nil)
	}
	natom, err := atomCount(lines[cntNdx], len(lines)-cntNdx-1)
	if err != nil {
		return nil, lineErr(name, lines, cntNdx, "bad atom count in counts line", err)
	}
	if natom <= 0 {
		return nil, lineErr(name, lines, cntNdx, "counts line has no atoms", nil)
	}
	start, end := cntNdx+1, cntNdx+1+natom
	if end > len(lines) {
		desc := "counts line wants " + strconv.Itoa(natom) + " atoms, but only " +
			strconv.Itoa(len(lines)-start) + " lines follow"
		return nil, lineErr(name, lines, cntNdx, desc, nil)
	}

	xyzS := make(cmmn.XyzSl, 0, natom)
	for i := start; i < end; i++ {
		w := strings.Fields(lines[i])
		if len(w) < 3 {
			return nil, lineErr(name, lines, i, "atom line has fewer than 3 fields", nil)
		}
		xyz, axis, err := xyzFromFields([3]string{w[0], w[1], w[2]})
		if err != nil {
			return nil, badCoord(name, lines, i, axis, w[axis], err)
		}
		xyzS = append(xyzS, xyz)
	}
	return finish(name, xyzS)
}
