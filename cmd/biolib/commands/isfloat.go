package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/strutil"
)

var ErrNotNumeric = errors.New("value is not numeric")

// NewIsFloatCmd returns the isfloat command.
func NewIsFloatCmd(arg *RootArgs) *cobra.Command {
	args := NewIsFloatArgs(arg)

	cmd := &cobra.Command{
		Use:   "isfloat VALUE...",
		Short: "Report whether values can be parsed as floating-point numbers",
		Example: `  biolib isfloat 3.14 1e-5 abc
  biolib isfloat --strict "$COVERAGE"
`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			if err := validateOutputFormat(args.GetOutput()); err != nil {
				return err
			}

			res := make(isFloatResult, 0, len(pArgs))

			var invalid []string

			for _, v := range pArgs {
				ok := strutil.IsFloat(v)
				if !ok {
					invalid = append(invalid, strconv.Quote(v))
				}

				res = append(res, numericValue{Value: v, Numeric: ok})
			}

			if err := writeOutput(cmd.OutOrStdout(), args.GetOutput(), res); err != nil {
				return err
			}

			if args.GetStrict() && len(invalid) > 0 {
				return fmt.Errorf("%w: %s", ErrNotNumeric, strings.Join(invalid, ", "))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(args.strict, "strict", false, "Exit with an error if any value is not numeric")
	addOutputFlag(cmd, args.output)

	return cmd
}

type numericValue struct {
	Value   string `json:"value"   yaml:"value"`
	Numeric bool   `json:"numeric" yaml:"numeric"`
}

type isFloatResult []numericValue

func (r isFloatResult) Lines() []string {
	lines := make([]string, 0, len(r))
	for _, v := range r {
		lines = append(lines, fmt.Sprintf("%s\t%t", v.Value, v.Numeric))
	}

	return lines
}

// IsFloatArgs holds the arguments for the isfloat command.
type IsFloatArgs struct {
	strict *bool
	output *string
	*RootArgs
}

// NewIsFloatArgs creates a new [IsFloatArgs].
func NewIsFloatArgs(args *RootArgs) *IsFloatArgs {
	return &IsFloatArgs{
		strict:   new(bool),
		output:   new(string),
		RootArgs: args,
	}
}

func (a *IsFloatArgs) GetStrict() bool {
	return *a.strict
}

func (a *IsFloatArgs) GetOutput() string {
	return *a.output
}
