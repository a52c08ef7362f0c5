package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/biolib/pkg/log"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()
	prof := newProfiler(args)

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentFlags().StringVar(args.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	cmd.PersistentFlags().StringVar(args.heapProfile, "heapprofile", "", "Write a heap profile to this file")
	cmd.PersistentFlags().StringVar(args.memProfile, "memprofile", "", "Write a memory profile to this file")
	cmd.PersistentFlags().
		IntVar(args.memProfileRate, "memprofile_rate", 512*1024, "Memory profiling rate as a fraction")
	cmd.PersistentFlags().StringVar(args.blockProfile, "blockprofile", "", "Write a block profile to this file")
	cmd.PersistentFlags().IntVar(args.blockProfileRate, "blockprofile_rate", 1, "Block profiling rate as a fraction")
	cmd.PersistentFlags().StringVar(args.mutexProfile, "mutexprofile", "", "Write a mutex profile to this file")
	cmd.PersistentFlags().IntVar(args.mutexProfileRate, "mutexprofile_rate", 1, "Mutex profiling rate as a fraction")

	for _, f := range []string{"cpuprofile", "heapprofile", "memprofile", "blockprofile", "mutexprofile"} {
		must(cmd.MarkPersistentFlagFilename(f))
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandler(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		if err := prof.start(); err != nil {
			return err
		}

		slog.Debug("ready to go")

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		return prof.stop()
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewCheckCmd(args))
	cmd.AddCommand(NewMkdirCmd(args))
	cmd.AddCommand(NewConcatCmd(args))
	cmd.AddCommand(NewSortCmd(args))
	cmd.AddCommand(NewStripExtCmd(args))
	cmd.AddCommand(NewIsFloatCmd(args))

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
