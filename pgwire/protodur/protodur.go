// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package protodur bridges protobuf durations (durationpb.Duration)
// to the wire interval codec. A protobuf duration spans ±10000 years,
// wider than time.Duration, so the conversions here work directly in
// seconds and microseconds instead of routing through the host
// duration type. The month/day policy, checked arithmetic, and
// precision rejection are pgwire's; this package only adapts the
// representation.
package protodur

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/bureau-foundation/sqlwire/pgwire"
)

const microsecondsPerSecond = 1_000_000

// ToInterval converts a protobuf duration to a wire interval. Months
// and days are always zero: a protobuf duration carries no calendar
// component. Invalid durations (per CheckValid), negative durations,
// and durations with a nonzero sub-microsecond remainder are
// rejected; the seconds-to-microseconds conversion is
// overflow-checked.
func ToInterval(d *durationpb.Duration) (pgwire.Interval, error) {
	if err := d.CheckValid(); err != nil {
		return pgwire.Interval{}, fmt.Errorf("protodur: %w", err)
	}
	seconds := d.GetSeconds()
	nanos := int64(d.GetNanos())
	if seconds < 0 || nanos < 0 {
		return pgwire.Interval{}, fmt.Errorf("protodur: duration %ds %dns is negative: %w",
			seconds, nanos, pgwire.ErrOutOfRange)
	}
	if nanos%1000 != 0 {
		return pgwire.Interval{}, fmt.Errorf("protodur: duration %ds %dns: interval does not support nanosecond precision: %w",
			seconds, nanos, pgwire.ErrPrecisionLoss)
	}
	if seconds > math.MaxInt64/microsecondsPerSecond {
		return pgwire.Interval{}, fmt.Errorf("protodur: seconds would overflow in microseconds: %w", pgwire.ErrOutOfRange)
	}
	microseconds := seconds * microsecondsPerSecond
	remainder := nanos / 1000
	if microseconds > math.MaxInt64-remainder {
		return pgwire.Interval{}, fmt.Errorf("protodur: seconds + nanoseconds would overflow in microseconds: %w", pgwire.ErrOutOfRange)
	}
	return pgwire.IntervalFromMicroseconds(microseconds + remainder), nil
}

// FromInterval converts a wire interval to a protobuf duration via
// the shared elapsed-time policy. Intervals beyond the protobuf
// ±10000-year range fail with ErrOutOfRange.
func FromInterval(interval pgwire.Interval) (*durationpb.Duration, error) {
	seconds, nanos, err := interval.Elapsed()
	if err != nil {
		return nil, err
	}
	if seconds > math.MaxInt64 {
		return nil, fmt.Errorf("protodur: interval seconds exceed int64: %w", pgwire.ErrOutOfRange)
	}
	d := &durationpb.Duration{Seconds: int64(seconds), Nanos: int32(nanos)}
	if err := d.CheckValid(); err != nil {
		return nil, fmt.Errorf("protodur: interval exceeds protobuf duration range: %w", pgwire.ErrOutOfRange)
	}
	return d, nil
}

// Duration binds a protobuf duration to the wire codec contract.
type Duration struct {
	Proto *durationpb.Duration
}

// WireType implements pgwire.Typed. Protobuf durations travel as
// intervals.
func (Duration) WireType() pgwire.TypeInfo { return pgwire.TypeInterval }

// SizeHint implements pgwire.Encoder.
func (Duration) SizeHint() int { return pgwire.Interval{}.SizeHint() }

// EncodeBinary converts through ToInterval and appends the interval
// layout. On conversion failure buf is returned unmodified.
func (d Duration) EncodeBinary(buf []byte) ([]byte, error) {
	interval, err := ToInterval(d.Proto)
	if err != nil {
		return buf, err
	}
	return interval.EncodeBinary(buf)
}

// Decode reads an interval wire value and converts it through
// FromInterval.
func (d *Duration) Decode(v pgwire.Value) error {
	var interval pgwire.Interval
	if err := interval.Decode(v); err != nil {
		return err
	}
	proto, err := FromInterval(interval)
	if err != nil {
		return err
	}
	d.Proto = proto
	return nil
}
