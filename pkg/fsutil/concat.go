package fsutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
)

// GzipSuffix marks output paths that are written gzip-compressed.
const GzipSuffix = ".gz"

var (
	ErrFailedFileRead  = errors.New("failed to read file")
	ErrFailedFileWrite = errors.New("failed to write file")
	ErrFailedFileClose = errors.New("failed to close file")
)

// IsGzipPath reports whether output written to path should be gzip-compressed.
func IsGzipPath(path string) bool {
	return strings.HasSuffix(path, GzipSuffix)
}

// ConcatenateFiles writes the contents of inputs, in order, to output. The
// output file is created or truncated, and is gzip-compressed when its name
// ends with [GzipSuffix].
//
// Any failure aborts the operation; output is left with whatever was written
// up to that point. A compressed output is still closed, so the partial
// content decompresses cleanly.
func ConcatenateFiles(inputs []string, output string) error {
	//nolint:gosec // G304 output path is provided by the caller.
	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrFailedFileWrite, output, err)
	}

	err = concatenateTo(f, output, inputs)

	errClose := f.Close()
	if errClose != nil {
		err = multierror.Append(err, fmt.Errorf("%w %q: %w", ErrFailedFileClose, output, errClose))
	}

	return err
}

func concatenateTo(f *os.File, output string, inputs []string) error {
	bw := bufio.NewWriter(f)

	var (
		w  io.Writer = bw
		gw *gzip.Writer
	)

	if IsGzipPath(output) {
		gw = gzip.NewWriter(bw)
		w = gw
	}

	var merr error

	if _, err := Concatenate(w, inputs...); err != nil {
		merr = multierror.Append(merr, err)
	}

	// Close and flush even after a failed input, so the bytes copied so far
	// reach the file as a readable stream.
	if gw != nil {
		if err := gw.Close(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w %q: %w", ErrFailedFileWrite, output, err))
		}
	}

	if err := bw.Flush(); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("%w %q: %w", ErrFailedFileWrite, output, err))
	}

	return merr
}

// Concatenate copies the contents of inputs, in order, to w. Each input is
// closed before the next one is opened. It returns the number of bytes
// copied.
func Concatenate(w io.Writer, inputs ...string) (int64, error) {
	var total int64

	for _, input := range inputs {
		n, err := copyFile(w, input)
		total += n

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func copyFile(w io.Writer, input string) (int64, error) {
	//nolint:gosec // G304 input paths are provided by the caller.
	f, err := os.Open(input)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrFailedFileRead, input, err)
	}

	n, err := io.Copy(w, f)
	if err != nil {
		merr := fmt.Errorf("error on file %q: %w", input, err)

		errClose := f.Close()
		if errClose != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w %q: %w", ErrFailedFileClose, input, errClose))
		}

		return n, merr
	}

	err = f.Close()
	if err != nil {
		return n, fmt.Errorf("%w %q: %w", ErrFailedFileClose, input, err)
	}

	return n, nil
}
