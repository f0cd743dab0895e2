// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// pointWireSize is the fixed binary layout size: x (8 bytes) followed
// by y (8 bytes). The binary point format carries no delimiter bytes;
// delimiters exist only in the text form "(x,y)".
const pointWireSize = 16

// Point is a two-dimensional coordinate pair, the server's point
// type.
type Point struct {
	X float64
	Y float64
}

// WireType implements Typed.
func (Point) WireType() TypeInfo { return TypePoint }

// SizeHint implements Encoder. The binary layout is always 16 bytes.
func (Point) SizeHint() int { return pointWireSize }

// EncodeBinary appends the 16-byte binary layout to buf: x then y,
// each an 8-byte big-endian float64.
func (p Point) EncodeBinary(buf []byte) ([]byte, error) {
	buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(p.X))
	buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(p.Y))
	return buf, nil
}

// Decode reads a point from a binary wire value. Text-format values
// fail with ErrUnsupportedFormat rather than attempting to parse the
// "(x,y)" form. Payloads shorter than the 16-byte layout fail with a
// ShortBufferError identifying the coordinate where the bytes ran
// out.
func (p *Point) Decode(value Value) error {
	if value.Format != FormatBinary {
		return fmt.Errorf("decode point from %s format: %w", value.Format, ErrUnsupportedFormat)
	}
	b := value.Bytes
	if got := len(b); got < pointWireSize {
		field := "y"
		if got < 8 {
			field = "x"
		}
		return &ShortBufferError{Type: "point", Field: field, Want: pointWireSize, Got: got}
	}
	p.X = math.Float64frombits(binary.BigEndian.Uint64(b[0:8]))
	p.Y = math.Float64frombits(binary.BigEndian.Uint64(b[8:16]))
	return nil
}
