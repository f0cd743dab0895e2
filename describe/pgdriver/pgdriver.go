// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pgdriver provides the Postgres describe backend. Importing
// the package (usually blank) registers it with the default describe
// registry.
//
// The driver prepares the query under the unnamed statement with the
// extended protocol, which makes the server plan the statement and
// report parameter and result-column OIDs without executing anything.
// OIDs render to host type names through the pgwire catalog.
package pgdriver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bureau-foundation/sqlwire/describe"
	"github.com/bureau-foundation/sqlwire/pgwire"
)

func init() {
	describe.Register(New())
}

// New returns the Postgres describe driver. Most callers rely on init
// registration through a blank import instead of calling this.
func New() describe.Driver { return driver{} }

type driver struct{}

func (driver) Backend() string { return describe.BackendPostgres }

func (driver) Connect(ctx context.Context, databaseURL string) (describe.Conn, error) {
	pg, err := pgconn.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgdriver: connect: %w", err)
	}
	return &conn{pg: pg}, nil
}

type conn struct {
	pg *pgconn.PgConn
}

func (c *conn) Describe(ctx context.Context, query string) (*describe.Descriptor, error) {
	described, err := c.pg.Prepare(ctx, "", query, nil)
	if err != nil {
		return nil, fmt.Errorf("pgdriver: prepare: %w", err)
	}
	outputs, err := renderOutputs(described.Fields)
	if err != nil {
		return nil, err
	}
	return &describe.Descriptor{
		Query:      query,
		InputTypes: renderInputs(described.ParamOIDs),
		Outputs:    outputs,
	}, nil
}

func (c *conn) Close() error {
	return c.pg.Close(context.Background())
}

// renderInputs maps parameter OIDs to host type names. A parameter
// whose OID is outside the catalog renders as unresolved rather than
// failing the describe: the caller can still bind it through a typed
// wire value.
func renderInputs(paramOIDs []uint32) []*string {
	inputs := make([]*string, len(paramOIDs))
	for i, oid := range paramOIDs {
		if name, ok := pgwire.HostTypeName(oid); ok {
			inputs[i] = &name
		}
	}
	return inputs
}

// renderOutputs maps result columns to host type names. Unlike
// parameters, a column with an OID outside the catalog is an error:
// rows holding that column could not be decoded, so the descriptor
// would promise a result shape the host cannot deliver.
func renderOutputs(fields []pgconn.FieldDescription) ([]describe.Column, error) {
	outputs := make([]describe.Column, len(fields))
	for i, field := range fields {
		name, ok := pgwire.HostTypeName(field.DataTypeOID)
		if !ok {
			return nil, fmt.Errorf("pgdriver: column %q has unsupported type OID %d", field.Name, field.DataTypeOID)
		}
		outputs[i] = describe.Column{Name: field.Name, HostType: name}
	}
	return outputs, nil
}
