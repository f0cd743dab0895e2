// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package describe implements the query description pipeline: given a
// database URL and a query string, select a backend from the URL
// scheme, open a connection, request the query's parameter and result
// type description, and render it as an immutable Descriptor. The
// build/CI verification step consumes descriptors either live (FromDB)
// or from a persisted offline store (Store) when no database is
// reachable.
//
// The package is organized around the pipeline stages:
//
//   - descriptor.go: the Descriptor record
//   - registry.go: scheme table, Driver/Conn interfaces, FromDB pipeline
//   - errors.go: the distinguishable pipeline failure kinds
//   - offline.go: content-addressed descriptor persistence
//
// Backend drivers live in subpackages (sqlitedriver, pgdriver) and
// self-register from init, so a blank import compiles a backend in:
//
//	import (
//	    "github.com/bureau-foundation/sqlwire/describe"
//	    _ "github.com/bureau-foundation/sqlwire/describe/pgdriver"
//	)
//
//	descriptor, err := describe.FromDB(ctx, os.Getenv("DATABASE_URL"), query)
//
// A URL whose scheme is recognized but whose driver was not compiled
// in fails with a NotCompiledError, never a silent no-op.
//
// # Concurrency
//
// Each FromDB call opens its own connection, uses it exclusively and
// sequentially, and closes it before returning. Cancellation is the
// caller's context; wrap the call in a timeout for deadline control.
package describe
