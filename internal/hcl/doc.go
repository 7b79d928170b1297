// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing profile files, evaluating their
// expressions and translating the result into the format-agnostic
// config.Profile.
package hcl
