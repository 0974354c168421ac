/*

labogrid reads the structure of a ligand and works out the grid box for a
docking run. The box is centered on the middle of the extremes of the
atom coordinates and each side is the extent of the atoms along that axis
times a scale factor.

Usage:
 labogrid -i ligand.mol2
 labogrid -e crystal_ligand.pdb -s 2.5

Flags:
  -i filename
    	Ligand file. It can be .pdb, .pdbqt, .sdf or .mol2. Only the box
    	size is written.
  -e filename
    	Experimental ligand, one whose position in the binding site is
    	known. It can be .pdb, .sdf or .mol2. The center of the box is
    	written as well as the size.
  -s N
    	Scale factor for the size of the box. Default 2.
  -c filename
    	TOML file with defaults. It may set scale and log. Flags given on
    	the command line win.
  -l where
    	Write debugging output to stdout, stderr or a file.
  -a
    	About.
  -h
    	Help.

Extensions are case sensitive. A file may be gzip compressed without
changing its name.

Output looks like
 Ligand Center:  X 1.000  Y 1.000  Z 0.000
 Gridbox Size :  W 4.000  H 4.000  D 0.000

In a PDB or PDBQT file, every ATOM and HETATM record counts and the
coordinates are read from the standard columns. In a mol2 file, the atoms
are between @<TRIPOS>ATOM and @<TRIPOS>BOND. In an SD file, only the
first molecule is read.

*/
package main
