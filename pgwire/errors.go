// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

import (
	"errors"
	"fmt"
)

// Error kinds reported by the codec layer. All are recoverable,
// caller-visible values; the codecs never panic on malformed input.
var (
	// ErrUnsupportedFormat reports a decode requested in a wire
	// format the type does not implement (typically a text-format
	// value handed to a binary-only codec).
	ErrUnsupportedFormat = errors.New("pgwire: unsupported wire format")

	// ErrPrecisionLoss reports an encode that would silently discard
	// sub-microsecond precision. The wire interval has microsecond
	// resolution; durations with a finer remainder are rejected
	// rather than truncated.
	ErrPrecisionLoss = errors.New("pgwire: sub-microsecond precision would be lost")

	// ErrOutOfRange reports a checked conversion whose result does
	// not fit the target representation, including overflow in any
	// duration arithmetic step and negative values where elapsed
	// time is required.
	ErrOutOfRange = errors.New("pgwire: value out of range")

	// ErrShortBuffer reports a wire payload shorter than the type's
	// fixed binary layout. The concrete error is a *ShortBufferError
	// carrying the byte counts.
	ErrShortBuffer = errors.New("pgwire: wire value shorter than type layout")
)

// ShortBufferError reports a binary wire value too short for the
// fixed layout of the type being decoded. It unwraps to
// ErrShortBuffer, so callers can match the kind with errors.Is and
// extract the detail with errors.As:
//
//	var short *pgwire.ShortBufferError
//	if errors.As(err, &short) {
//	    log.Printf("%s needs %d bytes, got %d", short.Type, short.Want, short.Got)
//	}
type ShortBufferError struct {
	// Type is the wire type being decoded (e.g. "interval").
	Type string
	// Field is the layout field the decoder was reading when the
	// bytes ran out.
	Field string
	// Want is the total byte count the type's fixed layout requires.
	Want int
	// Got is the byte count actually present in the value.
	Got int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("pgwire: decode %s: layout requires %d bytes, have %d (short in %s field)",
		e.Type, e.Want, e.Got, e.Field)
}

func (e *ShortBufferError) Unwrap() error { return ErrShortBuffer }
