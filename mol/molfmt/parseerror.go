// An error implementation that saves the line number and the
// line we were trying to read.
package molfmt

import (
	"strconv"
)

const maxMsgLen = 70

// ParseError is returned by every Extract. N is the line number,
// counting from 1. It is zero when the problem is not tied to a
// particular line, like a marker that never turned up.
type ParseError struct {
	Format string // name of the format being read
	N      int    // line number
	Inline string // The line that provoked the error
	Desc   string // Description of error
	Err    error  // underlying error, if any
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error puts together the format, line number, description and the
// start of the offending line.
func (e *ParseError) Error() string {
	errmsg := e.Format + ": "
	if e.N != 0 {
		errmsg += "line " + strconv.Itoa(e.N) + ": "
	}
	errmsg += e.Desc
	if e.Err != nil {
		errmsg += ": " + e.Err.Error()
	}
	if e.N != 0 && e.Inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.Inline)
	}
	return errmsg
}

func (e *ParseError) Unwrap() error { return e.Err }

// lineErr is for problems with one particular line. ndx is the index
// into the slice of lines, so it is one less than the line number.
func lineErr(format string, lines []string, ndx int, desc string, err error) *ParseError {
	return &ParseError{Format: format, N: ndx + 1, Inline: lines[ndx], Desc: desc, Err: err}
}

// fileErr is for problems with the file as a whole
func fileErr(format string, desc string, err error) *ParseError {
	return &ParseError{Format: format, Desc: desc, Err: err}
}
