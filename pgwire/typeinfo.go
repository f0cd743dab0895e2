// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pgwire

import (
	"time"

	"github.com/google/uuid"
)

// TypeInfo identifies one distinct wire representation: the type's
// OID in the pg_type catalog plus its display name. Every host value
// type supported by the codec layer maps to exactly one TypeInfo, and
// the scalar and slice forms of a host type always map consistently
// (Interval to interval, []Interval to interval[], never a mix).
type TypeInfo struct {
	OID  uint32
	Name string
}

func (t TypeInfo) String() string { return t.Name }

// OIDs of the wire types known to the catalog. These are the stable
// values assigned in pg_type.dat, identical on every server.
const (
	BoolOID             = 16
	ByteaOID            = 17
	NameOID             = 19
	Int8OID             = 20
	Int2OID             = 21
	Int4OID             = 23
	TextOID             = 25
	OIDOID              = 26
	JSONOID             = 114
	JSONArrayOID        = 199
	PointOID            = 600
	Float4OID           = 700
	Float8OID           = 701
	BoolArrayOID        = 1000
	ByteaArrayOID       = 1001
	Int2ArrayOID        = 1005
	Int4ArrayOID        = 1007
	TextArrayOID        = 1009
	VarcharArrayOID     = 1015
	Int8ArrayOID        = 1016
	PointArrayOID       = 1017
	Float4ArrayOID      = 1021
	Float8ArrayOID      = 1022
	BpcharOID           = 1042
	VarcharOID          = 1043
	DateOID             = 1082
	TimeOID             = 1083
	TimestampOID        = 1114
	TimestampArrayOID   = 1115
	DateArrayOID        = 1182
	TimestamptzOID      = 1184
	TimestamptzArrayOID = 1185
	IntervalOID         = 1186
	IntervalArrayOID    = 1187
	NumericArrayOID     = 1231
	NumericOID          = 1700
	UUIDOID             = 2950
	UUIDArrayOID        = 2951
	JSONBOID            = 3802
	JSONBArrayOID       = 3807
)

// Wire types for the values this package implements codecs for.
var (
	TypeInterval      = TypeInfo{OID: IntervalOID, Name: "interval"}
	TypeIntervalArray = TypeInfo{OID: IntervalArrayOID, Name: "interval[]"}
	TypePoint         = TypeInfo{OID: PointOID, Name: "point"}
	TypePointArray    = TypeInfo{OID: PointArrayOID, Name: "point[]"}
	TypeUUID          = TypeInfo{OID: UUIDOID, Name: "uuid"}
	TypeUUIDArray     = TypeInfo{OID: UUIDArrayOID, Name: "uuid[]"}
)

// WireTypeOf returns the wire type for a host value. It covers the
// value types this package implements codecs for (scalar and slice
// forms), the foreign types bound to them (uuid.UUID, time.Duration),
// and any other value implementing Typed. The second return is false
// for unsupported host types.
func WireTypeOf(v any) (TypeInfo, bool) {
	switch v.(type) {
	case Interval, *Interval:
		return TypeInterval, true
	case []Interval:
		return TypeIntervalArray, true
	case Point, *Point:
		return TypePoint, true
	case []Point:
		return TypePointArray, true
	case UUID, *UUID, uuid.UUID:
		return TypeUUID, true
	case []UUID, []uuid.UUID:
		return TypeUUIDArray, true
	case Duration, time.Duration:
		return TypeInterval, true
	case []Duration, []time.Duration:
		return TypeIntervalArray, true
	}
	if typed, ok := v.(Typed); ok {
		return typed.WireType(), true
	}
	return TypeInfo{}, false
}

// hostTypeNames renders a wire type OID into the Go type name the
// verification layer emits for that column or parameter. Types whose
// codecs live in this package render under their pgwire names; json
// and jsonb render as raw messages, numeric as string (lossless).
var hostTypeNames = map[uint32]string{
	BoolOID:             "bool",
	ByteaOID:            "[]byte",
	NameOID:             "string",
	Int8OID:             "int64",
	Int2OID:             "int16",
	Int4OID:             "int32",
	TextOID:             "string",
	OIDOID:              "uint32",
	JSONOID:             "json.RawMessage",
	JSONArrayOID:        "[]json.RawMessage",
	PointOID:            "pgwire.Point",
	Float4OID:           "float32",
	Float8OID:           "float64",
	BoolArrayOID:        "[]bool",
	ByteaArrayOID:       "[][]byte",
	Int2ArrayOID:        "[]int16",
	Int4ArrayOID:        "[]int32",
	TextArrayOID:        "[]string",
	VarcharArrayOID:     "[]string",
	Int8ArrayOID:        "[]int64",
	PointArrayOID:       "[]pgwire.Point",
	Float4ArrayOID:      "[]float32",
	Float8ArrayOID:      "[]float64",
	BpcharOID:           "string",
	VarcharOID:          "string",
	DateOID:             "time.Time",
	TimeOID:             "time.Time",
	TimestampOID:        "time.Time",
	TimestampArrayOID:   "[]time.Time",
	DateArrayOID:        "[]time.Time",
	TimestamptzOID:      "time.Time",
	TimestamptzArrayOID: "[]time.Time",
	IntervalOID:         "pgwire.Interval",
	IntervalArrayOID:    "[]pgwire.Interval",
	NumericArrayOID:     "[]string",
	NumericOID:          "string",
	UUIDOID:             "uuid.UUID",
	UUIDArrayOID:        "[]uuid.UUID",
	JSONBOID:            "json.RawMessage",
	JSONBArrayOID:       "[]json.RawMessage",
}

// HostTypeName returns the Go host type name for a wire type OID, for
// rendering described parameters and columns. The second return is
// false for OIDs outside the catalog (extension types, user-defined
// types).
func HostTypeName(oid uint32) (string, bool) {
	name, ok := hostTypeNames[oid]
	return name, ok
}
