// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !sqlwire_no_postgres

package main

// Registers the Postgres backend with the default describe registry.
import _ "github.com/bureau-foundation/sqlwire/describe/pgdriver"
