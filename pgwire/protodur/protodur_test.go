// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protodur

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/bureau-foundation/sqlwire/pgwire"
)

func TestToInterval(t *testing.T) {
	t.Parallel()
	interval, err := ToInterval(durationpb.New(27 * time.Millisecond))
	if err != nil {
		t.Fatalf("ToInterval: %v", err)
	}
	want := pgwire.Interval{Months: 0, Days: 0, Microseconds: 27_000}
	if interval != want {
		t.Errorf("ToInterval(27ms) = %+v, want %+v", interval, want)
	}
}

func TestToInterval_WiderThanHostDuration(t *testing.T) {
	t.Parallel()
	// 1000 years of seconds: representable as a protobuf duration,
	// far outside time.Duration's 292-year range.
	const seconds = int64(1000 * 365 * 24 * 60 * 60)
	interval, err := ToInterval(&durationpb.Duration{Seconds: seconds})
	if err != nil {
		t.Fatalf("ToInterval: %v", err)
	}
	if interval.Microseconds != seconds*1_000_000 {
		t.Errorf("Microseconds = %d, want %d", interval.Microseconds, seconds*1_000_000)
	}
}

func TestToInterval_PrecisionLoss(t *testing.T) {
	t.Parallel()
	_, err := ToInterval(&durationpb.Duration{Nanos: 1500})
	if !errors.Is(err, pgwire.ErrPrecisionLoss) {
		t.Errorf("ToInterval(1500ns) = %v, want ErrPrecisionLoss", err)
	}
}

func TestToInterval_Negative(t *testing.T) {
	t.Parallel()
	_, err := ToInterval(durationpb.New(-time.Second))
	if !errors.Is(err, pgwire.ErrOutOfRange) {
		t.Errorf("ToInterval(-1s) = %v, want ErrOutOfRange", err)
	}
}

func TestToInterval_Invalid(t *testing.T) {
	t.Parallel()
	// Mixed signs fail protobuf validation before any conversion.
	if _, err := ToInterval(&durationpb.Duration{Seconds: 1, Nanos: -1000}); err == nil {
		t.Error("ToInterval(mixed signs) = nil, want error")
	}
	if _, err := ToInterval(nil); err == nil {
		t.Error("ToInterval(nil) = nil, want error")
	}
}

func TestFromInterval(t *testing.T) {
	t.Parallel()
	proto, err := FromInterval(pgwire.Interval{Microseconds: 27_000})
	if err != nil {
		t.Fatalf("FromInterval: %v", err)
	}
	if proto.GetSeconds() != 0 || proto.GetNanos() != 27_000_000 {
		t.Errorf("FromInterval(27000µs) = %ds %dns, want 0s 27000000ns",
			proto.GetSeconds(), proto.GetNanos())
	}
}

func TestFromInterval_CalendarPolicy(t *testing.T) {
	t.Parallel()
	proto, err := FromInterval(pgwire.Interval{Months: 1, Days: 1})
	if err != nil {
		t.Fatalf("FromInterval: %v", err)
	}
	if proto.GetSeconds() != pgwire.SecondsPerMonth+pgwire.SecondsPerDay {
		t.Errorf("Seconds = %d, want %d", proto.GetSeconds(), pgwire.SecondsPerMonth+pgwire.SecondsPerDay)
	}
}

func TestFromInterval_BeyondProtobufRange(t *testing.T) {
	t.Parallel()
	// Max months is about 176 million years, past the protobuf
	// ±10000-year validity range.
	_, err := FromInterval(pgwire.Interval{Months: math.MaxInt32})
	if !errors.Is(err, pgwire.ErrOutOfRange) {
		t.Errorf("FromInterval(max months) = %v, want ErrOutOfRange", err)
	}
}

func TestFromInterval_Negative(t *testing.T) {
	t.Parallel()
	_, err := FromInterval(pgwire.Interval{Days: -1})
	if !errors.Is(err, pgwire.ErrOutOfRange) {
		t.Errorf("FromInterval(-1 day) = %v, want ErrOutOfRange", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, d := range []time.Duration{0, time.Microsecond, 27 * time.Millisecond, time.Hour} {
		interval, err := ToInterval(durationpb.New(d))
		if err != nil {
			t.Fatalf("ToInterval(%v): %v", d, err)
		}
		back, err := FromInterval(interval)
		if err != nil {
			t.Fatalf("FromInterval(%+v): %v", interval, err)
		}
		if back.AsDuration() != d {
			t.Errorf("roundtrip(%v) = %v", d, back.AsDuration())
		}
	}
}

func TestDuration_Codec(t *testing.T) {
	t.Parallel()
	original := Duration{Proto: durationpb.New(time.Hour)}
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
	if decoded.Proto.AsDuration() != time.Hour {
		t.Errorf("Decode = %v, want %v", decoded.Proto.AsDuration(), time.Hour)
	}
}

func TestDuration_EncodeFailureLeavesBuffer(t *testing.T) {
	t.Parallel()
	prefix := []byte{0xAB}
	encoded, err := Duration{Proto: &durationpb.Duration{Nanos: 1}}.EncodeBinary(prefix)
	if !errors.Is(err, pgwire.ErrPrecisionLoss) {
		t.Fatalf("EncodeBinary = %v, want ErrPrecisionLoss", err)
	}
	if !bytes.Equal(encoded, prefix) {
		t.Errorf("buffer modified on failed encode: %x", encoded)
	}
}

func TestDuration_WireType(t *testing.T) {
	t.Parallel()
	info, ok := pgwire.WireTypeOf(Duration{})
	if !ok || info != pgwire.TypeInterval {
		t.Errorf("WireTypeOf(Duration) = %v, %v; want %v, true", info, ok, pgwire.TypeInterval)
	}
}
