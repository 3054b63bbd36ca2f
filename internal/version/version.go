// Package version contains version information.
package version

// Version is the current version of this repository.
const Version = "1.2.1"
