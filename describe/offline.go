// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package describe

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/sqlwire/internal/codec"
)

// Store persists descriptors for offline verification, one CBOR file
// per distinct query text, content-addressed by the blake3 hash of
// the query. Identical descriptors always produce identical file
// bytes (deterministic encoding), so stores diff cleanly under
// version control.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on
// first Save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// queryKey is the content address of a query text: the blake3-256
// hash of its bytes, hex encoded.
func queryKey(query string) string {
	sum := blake3.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}

// PathFor returns the file path where a descriptor for query is
// stored.
func (s *Store) PathFor(query string) string {
	return filepath.Join(s.dir, "query-"+queryKey(query)+".cbor")
}

// Save writes the descriptor to its content-addressed path, creating
// the store directory if needed, and returns the path written.
func (s *Store) Save(descriptor *Descriptor) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("describe: create offline store directory: %w", err)
	}
	data, err := codec.Marshal(descriptor)
	if err != nil {
		return "", fmt.Errorf("describe: encode descriptor: %w", err)
	}
	path := s.PathFor(descriptor.Query)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("describe: write descriptor: %w", err)
	}
	return path, nil
}

// Load reads the descriptor previously saved for query. A missing
// file surfaces fs.ErrNotExist through the wrapped error, so callers
// can distinguish "never described" from a corrupt store. A stored
// descriptor recording a different query text than requested (a
// hand-edited or misplaced file) is an explicit error.
func (s *Store) Load(query string) (*Descriptor, error) {
	path := s.PathFor(query)
	descriptor, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if descriptor.Query != query {
		return nil, fmt.Errorf("describe: descriptor %s records a different query than requested", path)
	}
	return descriptor, nil
}

// LoadFile reads one persisted descriptor by path, without query
// verification. This is the by-path loading contract for callers that
// track descriptor files themselves.
func LoadFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("describe: read descriptor: %w", err)
	}
	var descriptor Descriptor
	if err := codec.Unmarshal(data, &descriptor); err != nil {
		return nil, fmt.Errorf("describe: decode descriptor %s: %w", path, err)
	}
	return &descriptor, nil
}
