// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package describe

import "fmt"

// backendDisplayNames renders backend identifiers for error messages.
var backendDisplayNames = map[string]string{
	BackendSQLite:   "SQLite",
	BackendPostgres: "Postgres",
	BackendMySQL:    "MySQL/MariaDB",
}

func backendDisplayName(backend string) string {
	if name, ok := backendDisplayNames[backend]; ok {
		return name
	}
	return backend
}

// UnknownSchemeError reports a database URL whose scheme is not in
// the scheme table at all.
type UnknownSchemeError struct {
	// Scheme is the offending URL scheme.
	Scheme string
	// URL is the full database URL.
	URL string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("describe: unexpected scheme %q in database URL %s", e.Scheme, e.URL)
}

// NotCompiledError reports a URL scheme the table recognizes whose
// backend driver is not compiled into this binary.
type NotCompiledError struct {
	// Backend is the backend the scheme belongs to.
	Backend string
	// Scheme is the URL scheme that selected the backend.
	Scheme string
	// URL is the full database URL.
	URL string
}

func (e *NotCompiledError) Error() string {
	return fmt.Sprintf("describe: database URL %s has the scheme of a %s database but %s support is not compiled into this binary",
		e.URL, backendDisplayName(e.Backend), e.Backend)
}

// ConnectError reports a failure establishing the describe
// connection. It wraps the driver's error.
type ConnectError struct {
	Backend string
	Err     error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("describe: failed to connect to %s database: %v", e.Backend, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// DescribeError reports a failure of the describe request itself,
// after a connection was established. It wraps the driver's error.
type DescribeError struct {
	Backend string
	Err     error
}

func (e *DescribeError) Error() string {
	return fmt.Sprintf("describe: %s describe request failed: %v", e.Backend, e.Err)
}

func (e *DescribeError) Unwrap() error { return e.Err }
