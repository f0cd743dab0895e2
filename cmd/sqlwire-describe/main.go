// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// sqlwire-describe prepares a SQL query against a database and prints
// the query's shape: the host type of every bind parameter and every
// result column. Nothing is executed; the query is planned and thrown
// away.
//
// Two modes of operation:
//
// Live mode (default): connects to the database named by --db (or
// DATABASE_URL), describes the query there, and prints the descriptor
// as JSON. With --save the descriptor is also recorded in the offline
// store.
//
// Offline mode (--offline): resolves the query from descriptors
// previously recorded with --save. No database connection is made,
// which suits build environments with no network access. --diag
// prints the stored record in CBOR diagnostic notation instead of
// JSON, for inspecting what exactly was recorded.
//
// Backends compile in through build tags: sqlwire_no_sqlite and
// sqlwire_no_postgres drop the respective driver from the binary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/sqlwire/describe"
	"github.com/bureau-foundation/sqlwire/internal/codec"
	"github.com/bureau-foundation/sqlwire/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("sqlwire-describe")
		return 0
	}

	var flags flagValues
	var configPath string
	var offline, save, diag, verbose bool

	flagSet := pflag.NewFlagSet("sqlwire-describe", pflag.ContinueOnError)
	flagSet.StringVar(&flags.databaseURL, "db", "", "database URL to describe against (default: $DATABASE_URL)")
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $SQLWIRE_CONFIG)")
	flagSet.StringVar(&flags.offlineDir, "offline-dir", "", "offline store directory (default: .sqlwire)")
	flagSet.DurationVar(&flags.timeout, "timeout", 0, "abort a live describe after this long (default: 10s)")
	flagSet.BoolVar(&offline, "offline", false, "resolve the query from the offline store instead of a live database")
	flagSet.BoolVar(&save, "save", false, "record the live result in the offline store")
	flagSet.BoolVar(&diag, "diag", false, "print the stored record in CBOR diagnostic notation")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return 0
	}
	flags.databaseURLSet = flagSet.Changed("db")
	flags.offlineDirSet = flagSet.Changed("offline-dir")
	flags.timeoutSet = flagSet.Changed("timeout")

	query, err := readQuery(flagSet.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	resolved, err := resolveSettings(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store := describe.NewStore(resolved.offlineDir)

	switch {
	case diag:
		notation, err := diagnoseStored(store, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Println(notation)
		return 0

	case offline:
		descriptor, err := store.Load(query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return printDescriptor(descriptor)

	default:
		if resolved.databaseURL == "" {
			fmt.Fprintf(os.Stderr, "error: no database URL: pass --db, set DATABASE_URL, or set database_url in the config file\n")
			return 2
		}
		descriptor, err := describeLive(context.Background(), logger, resolved, query, save, store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return printDescriptor(descriptor)
	}
}

// readQuery extracts the query text from the positional arguments. A
// lone "-" reads the query from stdin, for queries with shell-hostile
// quoting.
func readQuery(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("query argument required (use '-' to read the query from stdin)")
	}
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected argument: %s", args[1])
	}

	query := args[0]
	if query == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading query from stdin: %w", err)
		}
		query = string(data)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("query is empty")
	}
	return query, nil
}

// describeLive runs a describe against the configured database and
// optionally records the result in the offline store.
func describeLive(ctx context.Context, logger *slog.Logger, resolved settings, query string, save bool, store *describe.Store) (*describe.Descriptor, error) {
	ctx, cancel := context.WithTimeout(ctx, resolved.timeout)
	defer cancel()

	started := time.Now()
	descriptor, err := describe.FromDB(ctx, resolved.databaseURL, query)
	if err != nil {
		return nil, err
	}
	logger.Debug("describe complete",
		"elapsed", time.Since(started),
		"parameters", len(descriptor.InputTypes),
		"columns", len(descriptor.Outputs),
	)

	if save {
		path, err := store.Save(descriptor)
		if err != nil {
			return nil, err
		}
		logger.Info("descriptor recorded", "path", path)
	}
	return descriptor, nil
}

// diagnoseStored renders the stored record for the query in CBOR
// diagnostic notation.
func diagnoseStored(store *describe.Store, query string) (string, error) {
	data, err := os.ReadFile(store.PathFor(query))
	if err != nil {
		return "", fmt.Errorf("no stored record for this query: %w", err)
	}
	return codec.Diagnose(data)
}

func printDescriptor(descriptor *describe.Descriptor) int {
	data, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `sqlwire-describe — report the parameter and column types of a SQL query.

The query is prepared against the database, never executed. Output is
a JSON descriptor listing the host type of each bind parameter and
each result column.

Usage:
  sqlwire-describe [flags] QUERY
  sqlwire-describe [flags] -          (read QUERY from stdin)

Examples:
  # Describe against a database URL
  sqlwire-describe --db postgres://localhost/tasks 'SELECT id, title FROM tasks WHERE id = $1'

  # Record the result for offline builds
  sqlwire-describe --db postgres://localhost/tasks --save 'SELECT count(*) FROM tasks'

  # Resolve the same query later with no database available
  sqlwire-describe --offline 'SELECT count(*) FROM tasks'

Exit codes:
  0  query described
  1  describe failed
  2  usage error

Environment:
  DATABASE_URL    database URL when --db is not given
  SQLWIRE_CONFIG  YAML config file when --config is not given

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
