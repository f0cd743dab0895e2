// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

import "time"

// Duration binds time.Duration to the wire codec contract so plain
// durations can be passed as interval parameters and scanned from
// interval columns. Encoding is fallible: durations that cannot be
// represented (sub-microsecond remainder, negative) surface an error
// to the caller instead of aborting.
type Duration time.Duration

// WireType implements Typed. Durations travel as intervals.
func (Duration) WireType() TypeInfo { return TypeInterval }

// SizeHint implements Encoder. The interval layout is always 16 bytes.
func (Duration) SizeHint() int { return intervalWireSize }

// EncodeBinary converts the duration through IntervalFromDuration and
// appends the interval layout. On conversion failure buf is returned
// unmodified.
func (d Duration) EncodeBinary(buf []byte) ([]byte, error) {
	interval, err := IntervalFromDuration(time.Duration(d))
	if err != nil {
		return buf, err
	}
	return interval.EncodeBinary(buf)
}

// Decode reads an interval wire value and converts it to a duration
// via Interval.Duration, under the same fixed month/day policy and
// checked arithmetic.
func (d *Duration) Decode(value Value) error {
	var interval Interval
	if err := interval.Decode(value); err != nil {
		return err
	}
	converted, err := interval.Duration()
	if err != nil {
		return err
	}
	*d = Duration(converted)
	return nil
}
