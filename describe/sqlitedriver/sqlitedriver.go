// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitedriver provides the SQLite describe backend.
// Importing the package (usually blank) registers it with the default
// describe registry.
//
// SQLite prepares statements without executing them and reports
// column names, but its dynamic typing resolves neither parameter
// types nor column types ahead of execution: described parameters are
// always unresolved and columns render as the host type "any".
package sqlitedriver

import (
	"context"
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"

	"github.com/bureau-foundation/sqlwire/describe"
)

func init() {
	describe.Register(New())
}

// New returns the SQLite describe driver. Most callers rely on init
// registration through a blank import instead of calling this.
func New() describe.Driver { return driver{} }

type driver struct{}

func (driver) Backend() string { return describe.BackendSQLite }

// DatabasePath extracts the filesystem path (or ":memory:") from a
// sqlite URL. Accepted forms:
//
//	sqlite::memory:        in-memory database
//	sqlite:taskdb.sqlite   relative path
//	sqlite://taskdb.sqlite relative path
//	sqlite:///var/db/t.db  absolute path
func DatabasePath(databaseURL string) (string, error) {
	rest, ok := strings.CutPrefix(databaseURL, "sqlite:")
	if !ok {
		return "", fmt.Errorf("sqlitedriver: URL %q is not a sqlite URL", databaseURL)
	}
	path := strings.TrimPrefix(rest, "//")
	if path == "" {
		return "", fmt.Errorf("sqlitedriver: URL %q names no database", databaseURL)
	}
	return path, nil
}

// Connect opens the database named by the URL. File databases open
// without the create flag: describing a query against a database that
// does not exist is a connect error, not an invitation to create an
// empty one.
func (driver) Connect(ctx context.Context, databaseURL string) (describe.Conn, error) {
	path, err := DatabasePath(databaseURL)
	if err != nil {
		return nil, err
	}
	flags := sqlite.OpenReadWrite
	if path == ":memory:" {
		flags |= sqlite.OpenCreate | sqlite.OpenMemory
	}
	db, err := sqlite.OpenConn(path, flags)
	if err != nil {
		return nil, fmt.Errorf("sqlitedriver: open %s: %w", path, err)
	}
	return &conn{db: db}, nil
}

type conn struct {
	db *sqlite.Conn
}

// Describe prepares the query without stepping it and reports its
// shape: one unresolved entry per bind parameter and one "any" column
// per result column. Trailing statement text after the first
// statement is an error; a describe covers exactly one statement.
func (c *conn) Describe(ctx context.Context, query string) (*describe.Descriptor, error) {
	done := c.db.SetInterrupt(ctx.Done())
	defer c.db.SetInterrupt(done)

	stmt, trailing, err := c.db.PrepareTransient(query)
	if err != nil {
		return nil, fmt.Errorf("sqlitedriver: prepare: %w", err)
	}
	defer stmt.Finalize()

	if trailing != 0 {
		return nil, fmt.Errorf("sqlitedriver: query has %d bytes of trailing content after the first statement", trailing)
	}

	descriptor := &describe.Descriptor{
		Query:      query,
		InputTypes: make([]*string, stmt.BindParamCount()),
		Outputs:    make([]describe.Column, stmt.ColumnCount()),
	}
	for i := range descriptor.Outputs {
		descriptor.Outputs[i] = describe.Column{
			Name:     stmt.ColumnName(i),
			HostType: "any",
		}
	}
	return descriptor, nil
}

func (c *conn) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("sqlitedriver: close: %w", err)
	}
	return nil
}
