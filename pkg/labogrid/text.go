package labogrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/labogrid/mol/cmmn"
	"github.com/andrew-torda/labogrid/mol/molfile"
)

const (
	progName = "labogrid"
	branch   = "╰─○ "
)

// supported gives the allowed formats for a role, like "pdb, sdf, mol2"
func supported(role cmmn.Role) string {
	exts := molfile.AllowedExts(role)
	for i, e := range exts {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	return strings.Join(exts, ", ")
}

// writeUsage is the text for -h
func writeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage")
	fmt.Fprintln(w, branch+progName+" -i <ligand_filename>")
	fmt.Fprintln(w, branch+progName+" -e <experimental_ligand_filename>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Argument")
	fmt.Fprintln(w, branch+"Description of commands:")
	fmt.Fprintf(w, "         -i   ligand filename (supported: %s)\n", supported(cmmn.PrimaryLigand))
	fmt.Fprintf(w, "         -e   experimental ligand filename (supported: %s)\n", supported(cmmn.ReferenceLigand))
	fmt.Fprintln(w, "         -h   help")
	fmt.Fprintln(w, "         -a   about")
	fmt.Fprintln(w, branch+"Optional parameters:")
	fmt.Fprintln(w, "        [-s]  scale factor (default is 2)")
	fmt.Fprintln(w, "        [-c]  TOML file with defaults for scale and log")
	fmt.Fprintln(w, "        [-l]  debugging log: stdout, stderr or a file name")
}

const banner = `==============================================================================
     ___      _______  _______  _______  _______  ______    ___   ______
    |   |    |   _   ||  _    ||       ||       ||    _ |  |   | |      |
    |   |    |  |_|  || |_|   ||   _   ||    ___||   | ||  |   | |  _    |
    |   |    |       ||       ||  | |  ||   | __ |   |_||_ |   | | | |   |
    |   |___ |       ||  _   | |  |_|  ||   ||  ||    __  ||   | | |_|   |
    |       ||   _   || |_|   ||       ||   |_| ||   |  | ||   | |       |
    |_______||__| |__||_______||_______||_______||___|  |_||___| |______|

   LABOGRID - Gridbox size calculation for ligand docking

   This software is provided WITHOUT WARRANTY OF ANY KIND

   Get more information from https://github.com/RyanZR/labogrid

   Report bugs and issues to https://github.com/RyanZR/labogrid/issues

==============================================================================
`

// writeAbout is the text for -a
func writeAbout(w io.Writer) { io.WriteString(w, banner) }
