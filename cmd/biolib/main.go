package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/biolib/cmd/biolib/commands"
)

const (
	cmdName = "biolib"

	shortDesc = "Filesystem and string helpers for bioinformatics pipelines."
	longDesc  = `Filesystem and string helpers for bioinformatics pipelines.

biolib bundles the small utilities that pipeline steps keep needing:
validating that inputs exist, creating output directories, concatenating
sequence files (gzip-compressed when the output ends in .gz), sorting
names with embedded numbers, stripping file extensions and checking
whether values are numeric.

Any failed check makes biolib exit with status 1.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
