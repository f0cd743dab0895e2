// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package promdur

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/prometheus/common/model"

	"github.com/bureau-foundation/sqlwire/pgwire"
)

func TestToInterval(t *testing.T) {
	t.Parallel()
	interval, err := ToInterval(model.Duration(27 * time.Millisecond))
	if err != nil {
		t.Fatalf("ToInterval: %v", err)
	}
	want := pgwire.Interval{Months: 0, Days: 0, Microseconds: 27_000}
	if interval != want {
		t.Errorf("ToInterval(27ms) = %+v, want %+v", interval, want)
	}
}

func TestToInterval_PrecisionLoss(t *testing.T) {
	t.Parallel()
	_, err := ToInterval(model.Duration(1500 * time.Nanosecond))
	if !errors.Is(err, pgwire.ErrPrecisionLoss) {
		t.Errorf("ToInterval(1500ns) = %v, want ErrPrecisionLoss", err)
	}
}

func TestToInterval_Negative(t *testing.T) {
	t.Parallel()
	_, err := ToInterval(model.Duration(-time.Second))
	if !errors.Is(err, pgwire.ErrOutOfRange) {
		t.Errorf("ToInterval(-1s) = %v, want ErrOutOfRange", err)
	}
}

func TestFromInterval(t *testing.T) {
	t.Parallel()
	d, err := FromInterval(pgwire.Interval{Microseconds: 3_600_000_000})
	if err != nil {
		t.Fatalf("FromInterval: %v", err)
	}
	if time.Duration(d) != time.Hour {
		t.Errorf("FromInterval = %v, want %v", time.Duration(d), time.Hour)
	}
}

func TestFromInterval_Overflow(t *testing.T) {
	t.Parallel()
	_, err := FromInterval(pgwire.Interval{Months: math.MaxInt32})
	if !errors.Is(err, pgwire.ErrOutOfRange) {
		t.Errorf("FromInterval(max months) = %v, want ErrOutOfRange", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, d := range []model.Duration{
		0,
		model.Duration(time.Microsecond),
		model.Duration(27 * time.Millisecond),
		model.Duration(90 * time.Minute),
	} {
		interval, err := ToInterval(d)
		if err != nil {
			t.Fatalf("ToInterval(%v): %v", d, err)
		}
		back, err := FromInterval(interval)
		if err != nil {
			t.Fatalf("FromInterval(%+v): %v", interval, err)
		}
		if back != d {
			t.Errorf("roundtrip(%v) = %v", d, back)
		}
	}
}

func TestDuration_Codec(t *testing.T) {
	t.Parallel()
	original := Duration(model.Duration(time.Hour))
	encoded, err := original.EncodeBinary(nil)
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}

	fromInterval, err := pgwire.Interval{Microseconds: 3_600_000_000}.EncodeBinary(nil)
	if err != nil {
		t.Fatalf("Interval EncodeBinary: %v", err)
	}
	if !bytes.Equal(encoded, fromInterval) {
		t.Errorf("encoding %x != interval encoding %x", encoded, fromInterval)
	}

	var decoded Duration
	if err := decoded.Decode(pgwire.Value{Format: pgwire.FormatBinary, Bytes: encoded}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != original {
		t.Errorf("Decode = %v, want %v", time.Duration(decoded), time.Duration(original))
	}
}

func TestDuration_WireType(t *testing.T) {
	t.Parallel()
	info, ok := pgwire.WireTypeOf(Duration(0))
	if !ok || info != pgwire.TypeInterval {
		t.Errorf("WireTypeOf(Duration) = %v, %v; want %v, true", info, ok, pgwire.TypeInterval)
	}
}
