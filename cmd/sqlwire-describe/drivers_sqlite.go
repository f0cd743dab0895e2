// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !sqlwire_no_sqlite

package main

// Registers the SQLite backend with the default describe registry.
import _ "github.com/bureau-foundation/sqlwire/describe/sqlitedriver"
