// Package pipeline implements the whole-file price update: it reads a listing
// CSV into memory, validates its header, derives the marketplace price of
// every row and writes the result to a sibling file.
//
// The run is all-or-nothing. Every row is transformed before the output file
// is opened, and the output is written through a temporary file that is only
// renamed into place once it is complete, so a failed run never leaves a
// partial output behind.
package pipeline
