package commands

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/fsutil"
)

const (
	checkDesc = `This command validates that input paths exist.

Every path is checked and every failure is reported. The command exits with
status 1 if any path is missing or has the wrong type.
`
	checkExample = `  # Validate input files
  biolib check file reads_1.fq.gz reads_2.fq.gz

  # Validate input directories
  biolib check dir genomes/ markers/
`
)

// NewCheckCmd returns the check command.
func NewCheckCmd(_ *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Validate that input paths exist",
		Long:         checkDesc,
		Example:      checkExample,
		SilenceUsage: true,
	}

	cmd.AddCommand(newCheckPathsCmd("file", "Validate that files exist", fsutil.CheckFileExists))
	cmd.AddCommand(newCheckPathsCmd("dir", "Validate that directories exist", fsutil.CheckDirExists))

	return cmd
}

func newCheckPathsCmd(use, short string, check func(*slog.Logger, string) error) *cobra.Command {
	return &cobra.Command{
		Use:          use + " PATH...",
		Short:        short,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, pArgs []string) error {
			return checkPaths(slog.Default(), pArgs, check)
		},
	}
}

func checkPaths(logger *slog.Logger, paths []string, check func(*slog.Logger, string) error) error {
	var merr error

	for _, p := range paths {
		if err := check(logger, p); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if merr != nil {
		return fmt.Errorf("check failed: %w", merr)
	}

	return nil
}
