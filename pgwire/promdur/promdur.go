// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package promdur bridges Prometheus model durations to the wire
// interval codec. model.Duration is a defined type over
// time.Duration, so both directions convert through the host duration
// form and delegate entirely to pgwire's shared policy.
package promdur

import (
	"time"

	"github.com/prometheus/common/model"

	"github.com/bureau-foundation/sqlwire/pgwire"
)

// ToInterval converts a Prometheus duration to a wire interval.
// Rejection rules are pgwire.IntervalFromDuration's: sub-microsecond
// remainders fail with ErrPrecisionLoss, negatives with
// ErrOutOfRange.
func ToInterval(d model.Duration) (pgwire.Interval, error) {
	return pgwire.IntervalFromDuration(time.Duration(d))
}

// FromInterval converts a wire interval to a Prometheus duration
// under the shared elapsed-time policy and time.Duration's range.
func FromInterval(interval pgwire.Interval) (model.Duration, error) {
	converted, err := interval.Duration()
	if err != nil {
		return 0, err
	}
	return model.Duration(converted), nil
}

// Duration binds model.Duration to the wire codec contract.
type Duration model.Duration

// WireType implements pgwire.Typed. Prometheus durations travel as
// intervals.
func (Duration) WireType() pgwire.TypeInfo { return pgwire.TypeInterval }

// SizeHint implements pgwire.Encoder.
func (Duration) SizeHint() int { return pgwire.Interval{}.SizeHint() }

// EncodeBinary converts through ToInterval and appends the interval
// layout. On conversion failure buf is returned unmodified.
func (d Duration) EncodeBinary(buf []byte) ([]byte, error) {
	interval, err := ToInterval(model.Duration(d))
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
	converted, err := FromInterval(interval)
	if err != nil {
		return err
	}
	*d = Duration(converted)
	return nil
}
