// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

import (
	"fmt"

	"github.com/google/uuid"
)

// uuidWireSize is the binary layout size: the 16 raw bytes of the
// uuid, no length prefix, no hyphens.
const uuidWireSize = 16

// UUID binds uuid.UUID to the wire codec contract. Unlike interval
// and point it supports both wire formats: binary values are the raw
// 16 bytes, text values the canonical hyphenated form.
type UUID uuid.UUID

// ParseUUID parses the canonical string form into a wire UUID.
func ParseUUID(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("parse uuid: %w", err)
	}
	return UUID(parsed), nil
}

func (u UUID) String() string { return uuid.UUID(u).String() }

// WireType implements Typed.
func (UUID) WireType() TypeInfo { return TypeUUID }

// SizeHint implements Encoder. The binary layout is always 16 bytes.
func (UUID) SizeHint() int { return uuidWireSize }

// EncodeBinary appends the 16 raw uuid bytes to buf.
func (u UUID) EncodeBinary(buf []byte) ([]byte, error) {
	return append(buf, u[:]...), nil
}

// Decode reads a uuid from a wire value in either format.
func (u *UUID) Decode(value Value) error {
	switch value.Format {
	case FormatBinary:
		if got := len(value.Bytes); got < uuidWireSize {
			return &ShortBufferError{Type: "uuid", Field: "bytes", Want: uuidWireSize, Got: got}
		}
		copy(u[:], value.Bytes[:uuidWireSize])
		return nil
	case FormatText:
		parsed, err := uuid.ParseBytes(value.Bytes)
		if err != nil {
			return fmt.Errorf("decode uuid from text format: %w", err)
		}
		*u = UUID(parsed)
		return nil
	}
	return fmt.Errorf("decode uuid from %s format: %w", value.Format, ErrUnsupportedFormat)
}
