// Package matrix has a 2D array of float64's sitting on one backing slice.
// Call NewDMatrix2d with the right size. This will just give you
// a matrix to use. Each row is capped, so appending to a row copies it
// rather than running into the next one.
// With zero columns, every row is an empty slice. With zero rows, nothing
// is allocated and Size returns 0, 0.

package matrix

import (
	"fmt"
)

// DMatrix2d is a two dimensional array of float64's
type DMatrix2d struct {
	Mat      [][]float64
	fullData []float64
}

// fixSlices sets the row slices to point into the backing data
func (mat *DMatrix2d) fixSlices(n_r, n_c int) {
	tmp := mat.fullData
	mat.Mat = make([][]float64, n_r)
	for i := range mat.Mat {
		mat.Mat[i] = tmp[:n_c:n_c]
		tmp = tmp[n_c:]
	}
}

// NewDMatrix2d gives us a two dimensional matrix of n_r x n_c.
func NewDMatrix2d(n_r, n_c int) *DMatrix2d {
	r := new(DMatrix2d)
	r.fullData = make([]float64, n_r*n_c)
	r.fixSlices(n_r, n_c)
	return r
}

// Size returns the number of rows and number of columns
func (mat *DMatrix2d) Size() (nrow, ncol int) {
	if nrow = len(mat.Mat); nrow == 0 {
		return 0, 0
	}
	ncol = len(mat.Mat[0])
	return
}

// String returns the matrix printed out in a form that might be useful
// for debugging.
func (mat *DMatrix2d) String() (s string) {
	for _, row := range mat.Mat {
		for _, col := range row {
			s += fmt.Sprintf("%9.3f", col)
		}
		s += "\n"
	}
	return s
}
