// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Record, a single data row of a sheet.
package model

import "fmt"

// Record is one data row keyed by the shared Header. A row that is shorter
// than the header has absent cells at the end; they read as missing and are
// written back out as empty fields.
type Record struct {
	header *Header
	values []string
}

// NewRecord binds raw row fields to the header. A row with more fields than
// the header has columns is rejected.
func NewRecord(h *Header, fields []string) (*Record, error) {
	if len(fields) > h.Len() {
		return nil, fmt.Errorf("row has %d fields but header has %d columns", len(fields), h.Len())
	}
	return &Record{
		header: h,
		values: append([]string(nil), fields...),
	}, nil
}

// Get returns the value of a column. The boolean is false when the column is
// not in the header or the row ended before reaching it.
func (r *Record) Get(name string) (string, bool) {
	i, ok := r.header.Index(name)
	if !ok || i >= len(r.values) {
		return "", false
	}
	return r.values[i], true
}

// Set overwrites the value of a column, filling any absent cells before it
// with empty values. It returns false when the column is not in the header.
func (r *Record) Set(name, value string) bool {
	i, ok := r.header.Index(name)
	if !ok {
		return false
	}
	for len(r.values) <= i {
		r.values = append(r.values, "")
	}
	r.values[i] = value
	return true
}

// Fields returns the row in header order, with absent cells as empty strings.
func (r *Record) Fields() []string {
	out := make([]string, r.header.Len())
	copy(out, r.values)
	return out
}
