// Package config defines the format-agnostic run profile, along with the
// Loader interface for reading a profile from a file.
//
// A profile supplies defaults for the command-line flags. Concrete loaders,
// such as for HCL, are provided in separate packages.
package config
