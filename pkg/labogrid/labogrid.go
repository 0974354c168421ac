// Package labogrid ties the pieces together. It takes a structure file
// and a role, gets the coordinates, builds the grid box and writes out
// what matters for that role.
package labogrid

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/andrew-torda/labogrid/mol/cmmn"
	"github.com/andrew-torda/labogrid/mol/gridbox"
	"github.com/andrew-torda/labogrid/mol/molfile"
)

// Options is everything a run needs. It is filled in once from the
// command line and config file and never changed.
type Options struct {
	Path  string    // structure file
	Role  cmmn.Role // ligand or experimental ligand
	Scale float64   // box size is extent times this
	Log   string    // see logWhere
}

// check catches options no run could work with
func (o Options) check() error {
	if o.Path == "" {
		return usageErrorf("Invalid file or incorrect usage")
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 1) {
		return usageErrorf("scale factor must be above zero, got %v", o.Scale)
	}
	return nil
}

// fmtNum always gives three decimal places
func fmtNum(x float64) string {
	if x == 0 {
		x = 0 // no "-0.000"
	}
	return strconv.FormatFloat(x, 'f', 3, 64)
}

// Report writes the result. The center is only written for an
// experimental ligand, since that is the one whose position we trust.
func Report(w io.Writer, role cmmn.Role, box gridbox.GridBox) error {
	c, s := box.Center, box.Size
	if role.ReportsCenter() {
		if _, err := fmt.Fprintf(w, "Ligand Center:  X %s  Y %s  Z %s\n",
			fmtNum(c[0]), fmtNum(c[1]), fmtNum(c[2])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Gridbox Size :  W %s  H %s  D %s\n",
		fmtNum(s[0]), fmtNum(s[1]), fmtNum(s[2]))
	return err
}

// Run does the work for one file and writes the report to w.
// Nothing is written if there is an error.
func Run(opts Options, w io.Writer) error {
	if err := opts.check(); err != nil {
		return err
	}
	outlog, closer, err := logWhere(opts.Log)
	if err != nil {
		return usageErrorf("cannot open log %s: %v", opts.Log, err)
	}
	defer closer.Close()

	sf, err := molfile.Read(opts.Path, opts.Role)
	if err != nil {
		return err
	}
	outlog.Println("read", sf.Name, "as", sf.Format.Name(), "for", sf.Role, sf.NLine(), "lines")
	cs, err := sf.Coords()
	if err != nil {
		return err
	}
	outlog.Printf("%d atoms\n%s", cs.NAtom(), cs)
	if rr, err := gridbox.Ranges(cs); err == nil {
		for axis, r := range rr {
			outlog.Printf("%s from %g to %g", cmmn.AxisNames[axis], r.Min, r.Max)
		}
	}
	box, err := gridbox.New(cs, opts.Scale)
	if err != nil {
		return err
	}
	outlog.Println("scale", opts.Scale, "center", box.Center, "size", box.Size)
	return Report(w, opts.Role, box)
}
