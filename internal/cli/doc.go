// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags, optionally layered over a profile file, into the
// application's immutable configuration.
package cli
