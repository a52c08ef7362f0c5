package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/strutil"
)

// NewSortCmd returns the sort command.
func NewSortCmd(arg *RootArgs) *cobra.Command {
	args := NewSortArgs(arg)

	cmd := &cobra.Command{
		Use:   "sort [ITEM...]",
		Short: "Sort items so that embedded numbers compare by value",
		Long: `This command sorts items alphanumerically: runs of digits compare by
their integer value, so "bin2" sorts before "bin10".

Items are read from stdin, one per line, when none are given as arguments.
`,
		Example: `  biolib sort contig10 contig2 contig1
  ls bins/ | biolib sort --output json
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			if err := validateOutputFormat(args.GetOutput()); err != nil {
				return err
			}

			items := pArgs
			if len(items) == 0 {
				var err error

				items, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			return writeOutput(cmd.OutOrStdout(), args.GetOutput(), sortResult(strutil.AlphanumericSort(items)))
		},
	}

	addOutputFlag(cmd, args.output)

	return cmd
}

type sortResult []string

func (r sortResult) Lines() []string {
	return r
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}

	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}

// SortArgs holds the arguments for the sort command.
type SortArgs struct {
	output *string
	*RootArgs
}

// NewSortArgs creates a new [SortArgs].
func NewSortArgs(args *RootArgs) *SortArgs {
	return &SortArgs{
		output:   new(string),
		RootArgs: args,
	}
}

func (a *SortArgs) GetOutput() string {
	return *a.output
}
