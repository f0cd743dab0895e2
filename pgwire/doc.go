// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pgwire implements the typed binary codec layer for the
// Postgres extended (binary) wire format: the contract binding a host
// Go value type to a wire type identifier and a byte-level codec, and
// concrete codecs for the value types that need exact byte-layout
// handling (interval, point, uuid).
//
// The package is organized around the codec data flow:
//
//   - format.go: the text/binary format tag attached to every wire value
//   - typeinfo.go: the wire type catalog (OID ↔ wire type ↔ host type name)
//   - value.go: the Value/Typed/Encoder/Decoder contract
//   - interval.go: the calendar interval codec and duration bridge
//   - point.go: the geometric point codec
//   - uuid.go: the uuid codec
//   - duration.go: time.Duration bound as an interval parameter
//
// # Codec contract
//
// Encoding appends a value's fixed binary layout to a caller-owned
// buffer and can fail; decoding reads one wire value (raw bytes plus
// format tag) into a host value. Both are synchronous and
// side-effect-free: no shared state, no logging, no locking. A payload
// shorter than a type's fixed layout is reported as a
// ShortBufferError carrying the expected and actual byte counts and
// the field being parsed, never an out-of-bounds read. Types that
// only exist in the binary format reject text-format values with
// ErrUnsupportedFormat instead of attempting a best-effort parse.
//
// # Duration policy
//
// Converting an interval to elapsed time uses a fixed policy, not
// calendar arithmetic: every month is 30 days and every day is 86400
// seconds. All conversion arithmetic is overflow-checked; failures
// surface as ErrOutOfRange with the failing step identified. The
// policy lives here once; the adapter packages for alternative host
// duration representations (protodur, promdur) delegate to it.
package pgwire
