// Package cmmn has common definitions for coordinates and the roles
// a structure file can play.
package cmmn

import (
	"github.com/andrew-torda/labogrid/matrix"
)

// Axes in a CoordSet. They are also the row numbers in the matrix.
const (
	AxisX = iota
	AxisY
	AxisZ
	NAxis
)

// AxisNames are used in messages
var AxisNames = [NAxis]string{"x", "y", "z"}

type Error string

func (e Error) Error() string { return string(e) }

const ErrEmpty = Error("no atoms in coordinate set")

type Xyz struct{ X, Y, Z float64 }
type XyzSl []Xyz // xyz's are coordinates

// CoordSet holds one coordinate per atom, stored as three rows (x, y, z)
// of a matrix. Column i of every row belongs to atom i, so the axes
// always have the same length.
type CoordSet struct {
	m *matrix.DMatrix2d
}

// FromXyz copies a slice of coordinates into a new CoordSet.
// It is an error to give it nothing.
func FromXyz(xyzS XyzSl) (*CoordSet, error) {
	if len(xyzS) == 0 {
		return nil, ErrEmpty
	}
	cs := &CoordSet{m: matrix.NewDMatrix2d(NAxis, len(xyzS))}
	x, y, z := cs.m.Mat[AxisX], cs.m.Mat[AxisY], cs.m.Mat[AxisZ]
	for i, xyz := range xyzS {
		x[i], y[i], z[i] = xyz.X, xyz.Y, xyz.Z
	}
	return cs, nil
}

// NAtom says how many atoms we have
func (cs *CoordSet) NAtom() int {
	_, n := cs.m.Size()
	return n
}

// Axis returns the values along one axis in file order. The slice
// belongs to the CoordSet and should not be modified.
func (cs *CoordSet) Axis(axis int) []float64 { return cs.m.Mat[axis] }

// At returns the coordinates of atom i
func (cs *CoordSet) At(i int) Xyz {
	return Xyz{cs.m.Mat[AxisX][i], cs.m.Mat[AxisY][i], cs.m.Mat[AxisZ][i]}
}

// XyzSl returns a fresh copy of all coordinates, one per atom.
func (cs *CoordSet) XyzSl() XyzSl {
	ret := make(XyzSl, cs.NAtom())
	for i := range ret {
		ret[i] = cs.At(i)
	}
	return ret
}

// String has one row per axis, for debugging
func (cs *CoordSet) String() string { return cs.m.String() }
