package commands

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/fsutil"
)

// NewMkdirCmd returns the mkdir command.
func NewMkdirCmd(_ *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PATH...",
		Short: "Create directories and their parents if they do not exist",
		Example: `  # Prepare an output tree
  biolib mkdir out/align out/bins
`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, pArgs []string) error {
			logger := slog.Default()

			var merr error

			for _, p := range pArgs {
				if err := fsutil.MakeSurePathExists(logger, p); err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				logger.Debug("directory ready", slog.String("path", p))
			}

			if merr != nil {
				return fmt.Errorf("mkdir failed: %w", merr)
			}

			return nil
		},
	}
}
