// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package describe

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
)

// Backend names for the supported database families.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"
)

// schemeBackends is the fixed URL scheme table: one family of schemes
// per backend. Any scheme outside this table is an
// UnknownSchemeError. net/url lowercases schemes during parsing, so
// lookups are case-insensitive.
var schemeBackends = map[string]string{
	"sqlite":     BackendSQLite,
	"postgres":   BackendPostgres,
	"postgresql": BackendPostgres,
	"mysql":      BackendMySQL,
	"mariadb":    BackendMySQL,
}

// Driver opens describe connections for one backend.
type Driver interface {
	// Backend returns the backend name the driver serves (one of the
	// Backend constants).
	Backend() string

	// Connect opens a connection to the database named by the URL.
	Connect(ctx context.Context, databaseURL string) (Conn, error)
}

// Conn is a single describe-capable database connection. It must be
// used sequentially: one Describe completes or fails before the next
// call, and Close releases the connection.
type Conn interface {
	// Describe prepares the query server-side and reports its
	// parameter and result types. It never executes the query.
	Describe(ctx context.Context, query string) (*Descriptor, error)

	// Close releases the connection.
	Close() error
}

// Registry maps backends to their compiled-in drivers. The zero
// Registry is not usable; construct with NewRegistry.
type Registry struct {
	logger *slog.Logger

	mu      sync.RWMutex
	drivers map[string]Driver
}

// NewRegistry returns an empty driver registry. A nil logger
// discards.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		logger:  logger,
		drivers: make(map[string]Driver),
	}
}

// Register adds a driver. It panics if the driver is nil or its
// backend is already registered, matching database/sql convention:
// registration happens from driver package init functions where a
// duplicate is a programmer error, not a runtime condition.
func (r *Registry) Register(driver Driver) {
	if driver == nil {
		panic("describe: Register driver is nil")
	}
	backend := driver.Backend()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.drivers[backend]; dup {
		panic("describe: Register called twice for backend " + backend)
	}
	r.drivers[backend] = driver
}

func (r *Registry) driver(backend string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	driver, ok := r.drivers[backend]
	return driver, ok
}

// FromDB runs the description pipeline against a live database:
// parse the URL, select the backend from its scheme, connect,
// describe, close. The four failure stages are distinguishable with
// errors.As: *UnknownSchemeError, *NotCompiledError, *ConnectError,
// *DescribeError.
func (r *Registry) FromDB(ctx context.Context, databaseURL, query string) (*Descriptor, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("describe: parse database URL: %w", err)
	}
	backend, ok := schemeBackends[parsed.Scheme]
	if !ok {
		return nil, &UnknownSchemeError{Scheme: parsed.Scheme, URL: databaseURL}
	}
	driver, ok := r.driver(backend)
	if !ok {
		return nil, &NotCompiledError{Backend: backend, Scheme: parsed.Scheme, URL: databaseURL}
	}

	r.logger.Debug("describing query", "backend", backend, "query_bytes", len(query))
	conn, err := driver.Connect(ctx, databaseURL)
	if err != nil {
		return nil, &ConnectError{Backend: backend, Err: err}
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			r.logger.Warn("closing describe connection", "backend", backend, "error", closeErr)
		}
	}()

	descriptor, err := conn.Describe(ctx, query)
	if err != nil {
		return nil, &DescribeError{Backend: backend, Err: err}
	}
	return descriptor, nil
}

// defaultRegistry serves the package-level Register and FromDB.
// Driver subpackages register here from init, so the set of drivers
// in the default registry is exactly the set compiled into the
// binary.
var defaultRegistry = NewRegistry(nil)

// Register adds a driver to the default registry. Intended for driver
// package init functions.
func Register(driver Driver) {
	defaultRegistry.Register(driver)
}

// FromDB runs the description pipeline on the default registry.
func FromDB(ctx context.Context, databaseURL, query string) (*Descriptor, error) {
	return defaultRegistry.FromDB(ctx, databaseURL, query)
}
