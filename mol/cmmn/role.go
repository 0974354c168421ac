package cmmn

// Role says what a structure file is being used for. It decides which
// file formats are allowed and what gets reported.
type Role byte

const (
	PrimaryLigand   Role = iota // the ligand to be docked
	ReferenceLigand             // experimental pose, gives the search center
)

func (r Role) String() string {
	switch r {
	case PrimaryLigand:
		return "ligand"
	case ReferenceLigand:
		return "experimental ligand"
	}
	return "unknown role"
}

// ReportsCenter is true if the box center should be written out for
// this role. The center is always calculated.
func (r Role) ReportsCenter() bool { return r == ReferenceLigand }
