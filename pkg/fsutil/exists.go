package fsutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrFileNotExist = errors.New("input file does not exist")
	ErrDirNotExist  = errors.New("input directory does not exist")
)

// CheckFileExists returns an error wrapping [ErrFileNotExist] unless path
// exists and is a regular file. Failures are logged to logger, or to
// [slog.Default] when logger is nil.
func CheckFileExists(logger *slog.Logger, path string) error {
	if fileExists(path) {
		return nil
	}

	orDefault(logger).Error("input file does not exist", slog.String("path", path))

	return fmt.Errorf("%w: %s", ErrFileNotExist, path)
}

// CheckDirExists returns an error wrapping [ErrDirNotExist] unless path
// exists and is a directory. Failures are logged to logger, or to
// [slog.Default] when logger is nil.
func CheckDirExists(logger *slog.Logger, path string) error {
	if dirExists(path) {
		return nil
	}

	orDefault(logger).Error("input directory does not exist", slog.String("path", path))

	return fmt.Errorf("%w: %s", ErrDirNotExist, path)
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fi.Mode().IsRegular()
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fi.IsDir()
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}

	return logger
}
