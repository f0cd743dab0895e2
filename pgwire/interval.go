// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"time"
)

// Elapsed-time policy for interval conversion. A month is a fixed 30
// days and a day a fixed 86400 seconds; this is policy, not calendar
// arithmetic, and matches how the server renders intervals when no
// reference date is available.
const (
	// SecondsPerDay is the fixed length of an interval day.
	SecondsPerDay = 24 * 60 * 60

	// DaysPerMonth is the fixed length of an interval month.
	DaysPerMonth = 30

	// SecondsPerMonth is the fixed length of an interval month in
	// seconds (DaysPerMonth * SecondsPerDay).
	SecondsPerMonth = DaysPerMonth * SecondsPerDay
)

// intervalWireSize is the fixed binary layout size:
// microseconds (8 bytes) + days (4 bytes) + months (4 bytes).
const intervalWireSize = 16

// Interval is the canonical calendar-duration value, mirroring the
// server's internal representation. All host duration representations
// convert through it. The three fields are independent: the server
// never normalizes 30 days into a month or 24 hours into a day, and
// neither does this package.
type Interval struct {
	Months       int32
	Days         int32
	Microseconds int64
}

// IntervalFromMicroseconds returns an interval holding a plain
// elapsed time with no calendar component.
func IntervalFromMicroseconds(microseconds int64) Interval {
	return Interval{Microseconds: microseconds}
}

// IntervalFromDuration converts a host duration to an interval.
// Months and days are always zero: a time.Duration carries no
// calendar component. Durations with a nonzero sub-microsecond
// remainder fail with ErrPrecisionLoss rather than silently
// truncating; negative durations fail with ErrOutOfRange (the bridge
// models elapsed time). The microsecond count of any time.Duration
// fits in int64, so no overflow is possible on this path.
func IntervalFromDuration(d time.Duration) (Interval, error) {
	if d < 0 {
		return Interval{}, fmt.Errorf("duration %v is negative: %w", d, ErrOutOfRange)
	}
	if d%time.Microsecond != 0 {
		return Interval{}, fmt.Errorf("duration %v: interval does not support nanosecond precision: %w", d, ErrPrecisionLoss)
	}
	return Interval{Microseconds: int64(d / time.Microsecond)}, nil
}

// WireType implements Typed.
func (Interval) WireType() TypeInfo { return TypeInterval }

// SizeHint implements Encoder. The binary layout is always 16 bytes.
func (Interval) SizeHint() int { return intervalWireSize }

// EncodeBinary appends the 16-byte binary layout to buf: microseconds,
// days, months, each big-endian. The field order is fixed by the wire
// protocol.
func (v Interval) EncodeBinary(buf []byte) ([]byte, error) {
	buf = binary.BigEndian.AppendUint64(buf, uint64(v.Microseconds))
	buf = binary.BigEndian.AppendUint32(buf, uint32(v.Days))
	buf = binary.BigEndian.AppendUint32(buf, uint32(v.Months))
	return buf, nil
}

// Decode reads an interval from a binary wire value. Text-format
// values fail with ErrUnsupportedFormat: the text interval grammar
// ("1 year 2 mons ...") is not implemented here. Payloads shorter
// than the 16-byte layout fail with a ShortBufferError identifying
// the field where the bytes ran out; no out-of-bounds read occurs.
func (v *Interval) Decode(value Value) error {
	if value.Format != FormatBinary {
		return fmt.Errorf("decode interval from %s format: %w", value.Format, ErrUnsupportedFormat)
	}
	b := value.Bytes
	if got := len(b); got < intervalWireSize {
		field := "months"
		switch {
		case got < 8:
			field = "microseconds"
		case got < 12:
			field = "days"
		}
		return &ShortBufferError{Type: "interval", Field: field, Want: intervalWireSize, Got: got}
	}
	v.Microseconds = int64(binary.BigEndian.Uint64(b[0:8]))
	v.Days = int32(binary.BigEndian.Uint32(b[8:12]))
	v.Months = int32(binary.BigEndian.Uint32(b[12:16]))
	return nil
}

// Elapsed converts the interval to elapsed time under the fixed
// 30-day-month policy: seconds = months*SecondsPerMonth +
// days*SecondsPerDay + microseconds/1e6, with the sub-second
// microsecond remainder returned as nanoseconds. Every multiplication
// and addition is overflow-checked over an unsigned 64-bit
// accumulator; any overflow fails with ErrOutOfRange identifying the
// step. Negative fields cannot be represented as elapsed time and
// fail with the same kind.
func (v Interval) Elapsed() (seconds uint64, nanos uint32, err error) {
	months, err := elapsedField(int64(v.Months), "months")
	if err != nil {
		return 0, 0, err
	}
	days, err := elapsedField(int64(v.Days), "days")
	if err != nil {
		return 0, 0, err
	}
	microseconds, err := elapsedField(v.Microseconds, "microseconds")
	if err != nil {
		return 0, 0, err
	}

	monthSeconds, ok := mulUint64(months, SecondsPerMonth)
	if !ok {
		return 0, 0, fmt.Errorf("interval: months would overflow in seconds: %w", ErrOutOfRange)
	}
	daySeconds, ok := mulUint64(days, SecondsPerDay)
	if !ok {
		return 0, 0, fmt.Errorf("interval: days would overflow in seconds: %w", ErrOutOfRange)
	}
	seconds, ok = addUint64(monthSeconds, daySeconds)
	if !ok {
		return 0, 0, fmt.Errorf("interval: months + days would overflow in seconds: %w", ErrOutOfRange)
	}
	seconds, ok = addUint64(seconds, microseconds/1_000_000)
	if !ok {
		return 0, 0, fmt.Errorf("interval: months + days + microseconds would overflow in seconds: %w", ErrOutOfRange)
	}
	nanos = uint32(microseconds%1_000_000) * 1000
	return seconds, nanos, nil
}

// Duration converts the interval to a host duration via Elapsed. The
// result additionally must fit time.Duration's int64 nanosecond
// range; an interval beyond roughly 292 years fails with
// ErrOutOfRange.
func (v Interval) Duration() (time.Duration, error) {
	seconds, nanos, err := v.Elapsed()
	if err != nil {
		return 0, err
	}
	totalNanos, ok := mulUint64(seconds, uint64(time.Second))
	if ok {
		totalNanos, ok = addUint64(totalNanos, uint64(nanos))
	}
	if !ok || totalNanos > math.MaxInt64 {
		return 0, fmt.Errorf("interval of %d months %d days %d microseconds exceeds time.Duration range: %w",
			v.Months, v.Days, v.Microseconds, ErrOutOfRange)
	}
	return time.Duration(totalNanos), nil
}

// elapsedField converts one signed interval field into the unsigned
// accumulator domain.
func elapsedField(v int64, field string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("interval: negative %s (%d) not representable as elapsed time: %w", field, v, ErrOutOfRange)
	}
	return uint64(v), nil
}

func mulUint64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func addUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
