package labogrid_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/andrew-torda/labogrid/mol/cmmn"
	"github.com/andrew-torda/labogrid/mol/gridbox"
	"github.com/andrew-torda/labogrid/mol/molfile"
	"github.com/andrew-torda/labogrid/mol/molfmt"
	"github.com/andrew-torda/labogrid/pkg/common"
	. "github.com/andrew-torda/labogrid/pkg/labogrid"
)

const mol2Tri = `@<TRIPOS>MOLECULE
tri
 3 2 0 0 0
SMALL
NO_CHARGES

@<TRIPOS>ATOM
      1 C1          0.0000    0.0000    0.0000 C.3     1  LIG1        0.0000
      2 C2          2.0000    0.0000    0.0000 C.3     1  LIG1        0.0000
      3 O1          0.0000    2.0000    0.0000 O.3     1  LIG1        0.0000
@<TRIPOS>BOND
     1     1     2    1
     2     1     3    1
`

const pdbOne = "HETATM    1  C1  LIG A   1      12.345 -23.456  34.567  1.00  0.00           C\nEND\n"

const sdfTwo = `two
  handmade

  2  1  0  0  0  0  0  0  0  0999 V2000
    1.0000    1.0000    1.0000 C   0  0
    2.0000    3.0000   -1.0000 O   0  0
  1  2  1  0
M  END
`

func wrtFile(t *testing.T, name, s string) string {
	t.Helper()
	path, err := common.WrtTempDir(t.TempDir(), name, s)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

// runCmd runs the command with args and returns what went to stdout
func runCmd(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMol2Experimental(t *testing.T) {
	path := wrtFile(t, "tri.mol2", mol2Tri)
	out, err := runCmd("-e", path, "-s", "2")
	if err != nil {
		t.Fatal(err)
	}
	want := "Ligand Center:  X 1.000  Y 1.000  Z 0.000\n" +
		"Gridbox Size :  W 4.000  H 4.000  D 0.000\n"
	if out != want {
		t.Errorf("got\n%swanted\n%s", out, want)
	}
}

func TestMol2Ligand(t *testing.T) {
	path := wrtFile(t, "tri.mol2", mol2Tri)
	out, err := runCmd("--ligand", path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Gridbox Size :  W 4.000  H 4.000  D 0.000\n"; out != want {
		t.Errorf("got %q wanted %q", out, want)
	}
}

func TestSinglePdbAtom(t *testing.T) {
	path := wrtFile(t, "one.pdb", pdbOne)
	out, err := runCmd("-e", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Ligand Center:  X 12.345  Y -23.456  Z 34.567\n" +
		"Gridbox Size :  W 0.000  H 0.000  D 0.000\n"
	if out != want {
		t.Errorf("got\n%swanted\n%s", out, want)
	}
}

func TestScaleFromConfig(t *testing.T) {
	path := wrtFile(t, "two.sdf", sdfTwo)
	cfg := wrtFile(t, "lg.toml", "scale = 3\n")
	out, err := runCmd("-i", path, "-c", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Gridbox Size :  W 3.000  H 6.000  D 6.000\n"; out != want {
		t.Errorf("config scale: got %q wanted %q", out, want)
	}
	out, err = runCmd("-i", path, "-c", cfg, "-s", "0.5")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Gridbox Size :  W 0.500  H 1.000  D 1.000\n"; out != want {
		t.Errorf("flag should beat config: got %q wanted %q", out, want)
	}
}

func TestLogFile(t *testing.T) {
	path := wrtFile(t, "two.sdf", sdfTwo)
	logname := filepath.Join(t.TempDir(), "run.log")
	if _, err := runCmd("-i", path, "-l", logname); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(logname)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"SDF", "2 atoms", "    1.000   -1.000", "z from -1 to 1"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("log does not mention %q:\n%s", want, b)
		}
	}
}

// TestUnsupportedFirst uses a file that does not exist. We should hear
// about the extension, not the missing file.
func TestUnsupportedFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lig.xyz")
	out, err := runCmd("-i", path)
	var uerr *molfile.UnsupportedFormatError
	if !errors.As(err, &uerr) {
		t.Fatalf("wanted UnsupportedFormatError got %v", err)
	}
	if out != "" {
		t.Errorf("nothing should be written on error, got %q", out)
	}
	if ExitCode(err) == 0 {
		t.Error("exit code should not be 0")
	}
}

func TestPdbqtNotExperimental(t *testing.T) {
	path := wrtFile(t, "lig.pdbqt", pdbOne)
	if _, err := runCmd("-i", path); err != nil {
		t.Errorf("pdbqt ligand: %v", err)
	}
	_, err := runCmd("-e", path)
	var uerr *molfile.UnsupportedFormatError
	if !errors.As(err, &uerr) {
		t.Errorf("pdbqt as experimental ligand: wanted UnsupportedFormatError got %v", err)
	}
}

var failtests = []struct {
	name  string
	args  []string
	usage bool
}{
	{"no file", []string{}, true},
	{"only scale", []string{"-s", "3"}, true},
	{"bad scale", []string{"-i", "x.pdb", "-s", "big"}, true},
	{"zero scale", []string{"-i", "x.pdb", "-s", "0"}, true},
	{"unknown flag", []string{"-q"}, true},
	{"stray argument", []string{"-i", "x.pdb", "y.pdb"}, true},
	{"both roles", []string{"-i", "x.pdb", "-e", "y.pdb"}, true},
	{"missing config", []string{"-i", "x.pdb", "-c", "/nonexistent/labogrid.toml"}, true},
	{"missing file", []string{"-i", "/nonexistent/x.pdb"}, false},
}

func TestFailures(t *testing.T) {
	for _, test := range failtests {
		out, err := runCmd(test.args...)
		if err == nil {
			t.Errorf("%s: wanted an error", test.name)
			continue
		}
		var uerr *UsageError
		if errors.As(err, &uerr) != test.usage {
			t.Errorf("%s: usage error should be %v, got %v", test.name, test.usage, err)
		}
		if out != "" {
			t.Errorf("%s: nothing should be written, got %q", test.name, out)
		}
	}
}

func TestMissingFile(t *testing.T) {
	_, err := runCmd("-e", "/nonexistent/x.sdf")
	var nerr *molfile.NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("wanted NotFoundError got %v", err)
	}
}

func TestParseFailure(t *testing.T) {
	path := wrtFile(t, "broken.mol2", "@<TRIPOS>ATOM\n 1 C1 1.0 1.0 1.0 C.3\n")
	out, err := runCmd("-i", path)
	var perr *molfmt.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("wanted ParseError got %v", err)
	}
	if out != "" {
		t.Errorf("no partial output wanted, got %q", out)
	}
}

func TestHelpAbout(t *testing.T) {
	out, err := runCmd("-h")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ligand filename (supported: pdb, pdbqt, sdf, mol2)") ||
		!strings.Contains(out, "experimental ligand filename (supported: pdb, sdf, mol2)") {
		t.Errorf("help text wrong:\n%s", out)
	}
	out, err = runCmd("-a")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "LABOGRID - Gridbox size calculation") {
		t.Errorf("about text wrong:\n%s", out)
	}
}

func TestPrintError(t *testing.T) {
	var b bytes.Buffer
	PrintError(&b, errors.New("first\nsecond"))
	want := "labogrid\n╰─○ first\n    second\n"
	if b.String() != want {
		t.Errorf("got %q wanted %q", b.String(), want)
	}
}

func TestReportFormat(t *testing.T) {
	box := gridbox.GridBox{Center: mgl64.Vec3{-0.5, 10, 1.25}, Size: mgl64.Vec3{0, 22.5, 100}}
	var b bytes.Buffer
	if err := Report(&b, cmmn.ReferenceLigand, box); err != nil {
		t.Fatal(err)
	}
	want := "Ligand Center:  X -0.500  Y 10.000  Z 1.250\n" +
		"Gridbox Size :  W 0.000  H 22.500  D 100.000\n"
	if b.String() != want {
		t.Errorf("got\n%swanted\n%s", b.String(), want)
	}
}

func TestRunOptions(t *testing.T) {
	path := wrtFile(t, "tri.mol2", mol2Tri)
	var b bytes.Buffer
	opts := Options{Path: path, Role: cmmn.PrimaryLigand, Scale: 1}
	if err := Run(opts, &b); err != nil {
		t.Fatal(err)
	}
	if want := "Gridbox Size :  W 2.000  H 2.000  D 0.000\n"; b.String() != want {
		t.Errorf("got %q wanted %q", b.String(), want)
	}
}
