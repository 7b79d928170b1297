// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a price sheet: the
// header row and the data records read from a listing CSV.
//
// # Core Concepts
//
//   - Header: The ordered column names from the first row of the file. It is
//     read once and shared by every record of the run. Output files are
//     written in exactly this order.
//
//   - Record: A single data row. Values are stored positionally against the
//     shared Header rather than in a map, so writing a record back out never
//     depends on map iteration order.
//
// Column names are matched exactly (case and surrounding whitespace are
// significant). When a header repeats a column name, lookups resolve to the
// last occurrence.
package model
