// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

// Format identifies how a wire value's bytes are encoded. The two
// values are fixed by the Postgres protocol: 0 selects the text
// format, 1 the binary (extended) format.
type Format int16

const (
	// FormatText is the human-readable text encoding used by simple
	// queries and unprepared statements.
	FormatText Format = 0

	// FormatBinary is the fixed binary encoding used by the extended
	// query protocol. All codecs in this package implement it.
	FormatBinary Format = 1
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	}
	return "unknown"
}
