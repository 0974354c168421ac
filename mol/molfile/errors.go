package molfile

import (
	"github.com/andrew-torda/labogrid/mol/cmmn"
)

// UnsupportedFormatError is returned when the extension of a file is
// not one we accept for its role. Nothing has been read at this point.
type UnsupportedFormatError struct {
	Path string
	Ext  string
	Role cmmn.Role
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(no extension)"
	}
	return "File format " + ext + " not supported for " + e.Role.String() + ": " + e.Path
}

// NotFoundError means there is no file at Path
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string { return "file not found: " + e.Path }
func (e *NotFoundError) Unwrap() error { return e.Err }

// ReadError covers everything else that can go wrong getting the
// bytes of a file, including broken compression.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return "reading " + e.Path + ": " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }
