package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

var (
	ErrCreateDir = errors.New("failed to create directory")
	ErrNotDir    = errors.New("path exists and is not a directory")
	ErrEmptyPath = errors.New("empty path")
)

// MakeSurePathExists creates the directory at path along with any missing
// parents. A directory that already exists, including one created
// concurrently by another process, is not an error.
//
// Any other failure is logged to logger (or [slog.Default] when nil) and
// returned wrapped in [ErrCreateDir]. A path that exists as a regular file is
// such a failure and also wraps [ErrNotDir].
func MakeSurePathExists(logger *slog.Logger, path string) error {
	err := makeDirAll(path)
	if err == nil {
		return nil
	}

	orDefault(logger).Error("failed to create directory",
		slog.String("path", path),
		slog.Any("err", err),
	)

	return fmt.Errorf("%w %q: %w", ErrCreateDir, path, err)
}

func makeDirAll(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	err := os.MkdirAll(path, 0o750)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrExist) && dirExists(path) {
		return nil
	}

	if fi, serr := os.Stat(path); serr == nil && !fi.IsDir() {
		return ErrNotDir
	}

	return err
}
