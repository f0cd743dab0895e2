// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package describe

// Column is one result column of a described query.
type Column struct {
	// Name is the column name as the server reports it.
	Name string `json:"name"`

	// HostType is the Go type name the column decodes into (e.g.
	// "int64", "time.Time", "pgwire.Interval").
	HostType string `json:"host_type"`
}

// Descriptor records a query's parameter and result types, produced
// once per distinct query text and immutable after creation. The json
// tags serve both the CLI's JSON output and the CBOR persisted form.
type Descriptor struct {
	// Query is the described query text. The offline store uses it
	// to verify a loaded descriptor belongs to the query being
	// checked.
	Query string `json:"query"`

	// InputTypes holds one host type name per query parameter, in
	// parameter order. A nil entry is a parameter the backend could
	// not resolve (SQLite parameters are always unresolved).
	InputTypes []*string `json:"input_types"`

	// Outputs holds one entry per result column, in column order.
	Outputs []Column `json:"outputs"`
}
