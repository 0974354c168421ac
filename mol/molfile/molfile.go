// Package molfile gets a structure file into memory. It decides the
// format from the extension, checks the format is allowed for the
// role the file plays, maps the file, inflates it if it was compressed
// and splits it into lines.
package molfile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/labogrid/mol/cmmn"
	"github.com/andrew-torda/labogrid/mol/molfmt"
	"github.com/andrew-torda/labogrid/mol/zwrap"
)

var (
	ligandFormats = []molfmt.Format{molfmt.PDB, molfmt.PDBQT, molfmt.SDF, molfmt.MOL2}
	refFormats    = []molfmt.Format{molfmt.PDB, molfmt.SDF, molfmt.MOL2}
)

// Allowed returns the formats a file may have for a role
func Allowed(role cmmn.Role) []molfmt.Format {
	if role == cmmn.ReferenceLigand {
		return refFormats
	}
	return ligandFormats
}

// AllowedExts is Allowed, but just the extensions
func AllowedExts(role cmmn.Role) []string {
	var ret []string
	for _, f := range Allowed(role) {
		ret = append(ret, f.Ext())
	}
	return ret
}

// Resolve works out the format from the file name. It does not look at
// the file.
func Resolve(path string, role cmmn.Role) (molfmt.Format, error) {
	ext := filepath.Ext(path)
	f, ok := molfmt.ByExt(ext)
	if !ok || !slices.Contains(Allowed(role), f) {
		return nil, &UnsupportedFormatError{Path: path, Ext: ext, Role: role}
	}
	return f, nil
}

// StructFile is the text of a structure file, split into lines.
// It does not change after it has been read.
type StructFile struct {
	Name   string
	Format molfmt.Format
	Role   cmmn.Role
	lines  []string
}

// NLine is the number of lines in the file
func (sf *StructFile) NLine() int { return len(sf.lines) }

// Coords runs the format's extractor over the lines
func (sf *StructFile) Coords() (*cmmn.CoordSet, error) {
	return sf.Format.Extract(sf.lines)
}

// splitLines breaks text into lines without their line endings.
// A final newline does not start another line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// build inflates data if necessary and makes the StructFile. The lines
// are copies, so data can be unmapped afterwards.
func build(name string, data []byte, f molfmt.Format, role cmmn.Role) (*StructFile, error) {
	text, err := zwrap.Inflate(data)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	return &StructFile{Name: name, Format: f, Role: role, lines: splitLines(text)}, nil
}

// Read opens path, maps it into memory and returns its lines.
// The extension is checked before the file is touched. Files that
// cannot be mapped are read the ordinary way.
func Read(path string, role cmmn.Role) (*StructFile, error) {
	f, err := Resolve(path, role)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return nil, &ReadError{Path: path, Err: errors.New("is a directory")}
	}
	if fi.Size() == 0 { // empty, or a pipe. Cannot map either
		return Decode(path, fp, role)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return Decode(path, fp, role)
	}
	defer mm.Unmap()
	return build(path, mm, f, role)
}

// Decode reads a structure from r instead of a named file. name is
// only used for finding the format and for messages.
func Decode(name string, r io.Reader, role cmmn.Role) (*StructFile, error) {
	f, err := Resolve(name, role)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	return build(name, data, f, role)
}
