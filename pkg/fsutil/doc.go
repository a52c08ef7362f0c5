// Package fsutil provides filesystem helpers for pipeline inputs and outputs.
//
// Validators ([CheckFileExists], [CheckDirExists]) and [MakeSurePathExists]
// log failures through the [slog.Logger] they are given and return errors
// that can be matched with [errors.Is]. They never terminate the process;
// deciding whether a missing input is fatal is left to the caller.
//
// [ConcatenateFiles] joins files byte for byte and gzip-compresses the
// result when the output name ends in ".gz".
package fsutil
