package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/fsutil"
)

const (
	concatDesc = `This command concatenates files in the order given.

The output is gzip-compressed when its name ends in .gz. Without --output,
or with --output -, the plain concatenation is written to stdout.

All inputs are validated before the output is created. If an input fails to
read part way through, the output is left partially written.
`
	concatExample = `  # Merge genome fragments
  biolib concat -o genome.fna part1.fna part2.fna

  # Merge and compress
  biolib concat -o reads.fq.gz lane1.fq lane2.fq
`
)

// NewConcatCmd returns the concat command.
func NewConcatCmd(arg *RootArgs) *cobra.Command {
	args := NewConcatArgs(arg)

	cmd := &cobra.Command{
		Use:          "concat FILE...",
		Short:        "Concatenate files, optionally gzip-compressing the output",
		Long:         concatDesc,
		Example:      concatExample,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			logger := slog.Default()

			var merr error

			for _, p := range pArgs {
				if err := fsutil.CheckFileExists(logger, p); err != nil {
					merr = multierror.Append(merr, err)
				}
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			outFile := args.GetOutput()

			if outFile == "" || outFile == "-" {
				n, err := fsutil.Concatenate(cmd.OutOrStdout(), pArgs...)
				if err != nil {
					return fmt.Errorf("failed to concatenate files: %w", err)
				}

				logger.Debug("concatenated files", slog.Int("files", len(pArgs)), slog.Int64("bytes", n))

				return nil
			}

			if err := fsutil.MakeSurePathExists(logger, filepath.Dir(outFile)); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			if err := fsutil.ConcatenateFiles(pArgs, outFile); err != nil {
				return fmt.Errorf("failed to concatenate files: %w", err)
			}

			logger.Debug("concatenated files",
				slog.Int("files", len(pArgs)),
				slog.String("output", outFile),
				slog.Bool("gzip", fsutil.IsGzipPath(outFile)),
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(args.output, "output", "o", "", "Specify the output file path")
	must(cmd.MarkFlagFilename("output"))

	return cmd
}

// ConcatArgs holds the arguments for the concat command.
type ConcatArgs struct {
	output *string
	*RootArgs
}

// NewConcatArgs creates a new [ConcatArgs].
func NewConcatArgs(args *RootArgs) *ConcatArgs {
	return &ConcatArgs{
		output:   new(string),
		RootArgs: args,
	}
}

func (a *ConcatArgs) GetOutput() string {
	return *a.output
}
