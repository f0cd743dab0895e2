// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

// Value is a single wire value: the raw bytes of one parameter or
// result column together with the format tag the server attached to
// them. The caller owns Bytes for the duration of a Decode call;
// codecs copy out anything they keep.
type Value struct {
	Format Format
	Bytes  []byte
}

// Typed binds a host value type to its wire type identifier. A type's
// WireType must agree with its Encode/Decode layout: declaring one
// wire type and encoding another corrupts the parameter buffer.
// Unsupported host types simply do not implement the interface.
type Typed interface {
	WireType() TypeInfo
}

// Encoder is implemented by host values that can write themselves in
// the binary wire format.
type Encoder interface {
	Typed

	// EncodeBinary appends the value's binary wire representation to
	// buf and returns the extended slice. On failure buf is returned
	// unmodified; nothing is partially written.
	EncodeBinary(buf []byte) ([]byte, error)

	// SizeHint is the byte length EncodeBinary will append. Exact
	// for the fixed-layout types in this package.
	SizeHint() int
}

// Decoder is implemented by host values that can read themselves from
// one wire value. Decode is synchronous and touches no shared state;
// the same value may be decoded into from many goroutines as long as
// each goroutine uses its own receiver.
type Decoder interface {
	Typed

	// Decode reads the wire value into the receiver. The receiver is
	// unchanged on error.
	Decode(v Value) error
}
