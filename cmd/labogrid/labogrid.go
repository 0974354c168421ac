// 18 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/labogrid/pkg/labogrid"
)

func mymain() int {
	err := labogrid.NewCommand(os.Stdout).Execute()
	if err != nil {
		labogrid.PrintError(os.Stdout, err)
	}
	return labogrid.ExitCode(err)
}

func main() {
	os.Exit(mymain())
}
