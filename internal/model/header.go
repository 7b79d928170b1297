// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Header, the ordered list of column names that every
// Record of a sheet is keyed against.
package model

// Column names used by the price updater.
const (
	ColProductName      = "Product Name"
	ColLowPrice         = "TCG Low Price"
	ColMarketPrice      = "TCG Market Price"
	ColMarketplacePrice = "TCG Marketplace Price"
)

// Header is the immutable, ordered set of column names of a sheet.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader builds a Header from the raw first row of a file. The slice is
// copied so later mutation by the caller has no effect.
func NewHeader(names []string) *Header {
	h := &Header{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, name := range h.names {
		// Later duplicates win.
		h.index[name] = i
	}
	return h
}

// Names returns a copy of the column names in file order.
func (h *Header) Names() []string {
	return append([]string(nil), h.names...)
}

// Len returns the number of columns.
func (h *Header) Len() int {
	return len(h.names)
}

// Index returns the position of a column and whether it exists.
func (h *Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

// Has reports whether the header contains the named column.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Missing returns the subset of names that are not present in the header,
// preserving the order in which they were given.
func (h *Header) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !h.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
