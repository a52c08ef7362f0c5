package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/biolib/cmd/biolib/commands"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	tc := commands.NewRootCmd("test_biolib", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetIn(bytes.NewBufferString(stdin))
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	stdout, stderr, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
	assert.Empty(t, stderr)
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr   error
		logLevel  string
		logFormat string
	}{
		"default config": {
			logLevel:  "warn",
			logFormat: "text",
		},
		"json format": {
			logLevel:  "info",
			logFormat: "json",
		},
		"logfmt format": {
			logLevel:  "error",
			logFormat: "logfmt",
		},
		"debug level": {
			logLevel:  "debug",
			logFormat: "text",
		},
		"invalid log level": {
			logLevel:  "invalid",
			logFormat: "text",
			wantErr:   commands.ErrLogHandlerFailed,
		},
		"invalid log format": {
			logLevel:  "warn",
			logFormat: "invalid",
			wantErr:   commands.ErrLogHandlerFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := run(t, "",
				"--log_level", tc.logLevel,
				"--log_format", tc.logFormat,
				"version",
			)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
			}
		})
	}
}

func TestRootCmdArgPointers(t *testing.T) {
	args := commands.NewRootArgs()

	assert.Empty(t, args.GetLogLevel())
	assert.Empty(t, args.GetLogFormat())
	assert.Empty(t, args.GetCPUProfile())
	assert.Zero(t, args.GetMemProfileRate())
}

func TestRootCmdProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	heap := filepath.Join(dir, "heap.pprof")
	mutex := filepath.Join(dir, "mutex.pprof")

	_, _, err := run(t, "",
		"--cpuprofile", cpu,
		"--heapprofile", heap,
		"--mutexprofile", mutex,
		"version",
	)
	require.NoError(t, err)

	for _, p := range []string{cpu, heap, mutex} {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, fi.Size(), p)
	}
}
