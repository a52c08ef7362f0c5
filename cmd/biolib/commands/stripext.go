package commands

import (
	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/strutil"
)

// NewStripExtCmd returns the stripext command.
func NewStripExtCmd(arg *RootArgs) *cobra.Command {
	args := NewStripExtArgs(arg)

	cmd := &cobra.Command{
		Use:   "stripext NAME...",
		Short: "Print file names without their directory and extension",
		Long: `This command prints the base name of each argument with its extension
removed. With --extension, exactly that suffix is removed when present;
otherwise everything from the last period is removed.
`,
		Example: `  # Prints "genome.fna"
  biolib stripext --extension .gz /data/genome.fna.gz

  # Prints "report"
  biolib stripext report.txt
`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			if err := validateOutputFormat(args.GetOutput()); err != nil {
				return err
			}

			res := make(stripExtResult, 0, len(pArgs))
			for _, p := range pArgs {
				res = append(res, strippedName{
					Filename: p,
					Name:     strutil.RemoveExtension(p, args.GetExtension()),
				})
			}

			return writeOutput(cmd.OutOrStdout(), args.GetOutput(), res)
		},
	}

	cmd.Flags().StringVarP(args.extension, "extension", "e", "", "Specific extension to remove")
	addOutputFlag(cmd, args.output)

	return cmd
}

type strippedName struct {
	Filename string `json:"filename" yaml:"filename"`
	Name     string `json:"name"     yaml:"name"`
}

type stripExtResult []strippedName

func (r stripExtResult) Lines() []string {
	lines := make([]string, 0, len(r))
	for _, n := range r {
		lines = append(lines, n.Name)
	}

	return lines
}

// StripExtArgs holds the arguments for the stripext command.
type StripExtArgs struct {
	extension *string
	output    *string
	*RootArgs
}

// NewStripExtArgs creates a new [StripExtArgs].
func NewStripExtArgs(args *RootArgs) *StripExtArgs {
	return &StripExtArgs{
		extension: new(string),
		output:    new(string),
		RootArgs:  args,
	}
}

func (a *StripExtArgs) GetExtension() string {
	return *a.extension
}

func (a *StripExtArgs) GetOutput() string {
	return *a.output
}
