// Calculate the box around a set of coordinates. The center is the
// middle of the extremes on each axis, not the centroid of the atoms.
// The size is the extent on each axis times a scale factor.

package gridbox

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/andrew-torda/labogrid/mol/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmpty    = Error("empty coordinate axis")
	ErrBadScale = Error("scale factor must be a finite number above zero")
)

// AxisRange is the smallest and biggest value along one axis
type AxisRange struct{ Min, Max float64 }

// GridBox is the docking search volume. Both vectors are rounded to
// three decimal places.
type GridBox struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3 // width, height, depth
}

// Round3 rounds to three decimal places, halves going to the even
// neighbour. strconv works on the exact binary value, so we do not
// pick up the error from multiplying by 1000.
func Round3(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 3, 64), 64)
	if r == 0 { // no negative zeros
		return 0
	}
	return r
}

// Range returns the minimum and maximum of a slice of values
func Range(values []float64) (AxisRange, error) {
	if len(values) == 0 {
		return AxisRange{}, ErrEmpty
	}
	r := AxisRange{Min: values[0], Max: values[0]}
	for _, x := range values[1:] {
		r.Min = math.Min(r.Min, x)
		r.Max = math.Max(r.Max, x)
	}
	return r, nil
}

// Center is the mean of the two ends of a range, rounded
func Center(r AxisRange) float64 { return Round3((r.Min + r.Max) / 2) }

// Extent is the length of a range times scale, rounded
func Extent(r AxisRange, scale float64) float64 {
	return Round3(math.Abs(r.Max-r.Min) * scale)
}

// Ranges gets the range on each axis of a coordinate set
func Ranges(cs *cmmn.CoordSet) ([cmmn.NAxis]AxisRange, error) {
	var rr [cmmn.NAxis]AxisRange
	for axis := range rr {
		r, err := Range(cs.Axis(axis))
		if err != nil {
			return rr, Error(cmmn.AxisNames[axis] + ": " + err.Error())
		}
		rr[axis] = r
	}
	return rr, nil
}

// New builds the box for a set of coordinates. Each axis is treated
// on its own.
func New(cs *cmmn.CoordSet, scale float64) (GridBox, error) {
	var box GridBox
	if !(scale > 0) || math.IsInf(scale, 1) {
		return box, ErrBadScale
	}
	rr, err := Ranges(cs)
	if err != nil {
		return box, err
	}
	for axis, r := range rr {
		box.Center[axis] = Center(r)
		box.Size[axis] = Extent(r, scale)
	}
	return box, nil
}
