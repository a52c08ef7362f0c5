// Package version provides version information for the application.
//
// Version and Revision are set at build time with -ldflags, for example:
//
//	go build -ldflags "-X github.com/macropower/biolib/pkg/version.Version=1.2.3"
//
// When Revision is not set, it is read from the VCS information embedded by
// the Go toolchain.
package version
