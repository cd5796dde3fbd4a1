// Package filestore keeps attachment content. Records in the database point at
// content by its stored name; the backends here only move bytes.
package filestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sectorflow/demand-service/internal/config"
)

// Store is a flat namespace of attachment content.
type Store interface {
	// Put writes size bytes from r under name.
	Put(ctx context.Context, name string, r io.Reader, size int64) error
	// Open streams the content stored under name.
	// Returns domain.ErrNotFound if there is none.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Exists reports whether content is stored under name.
	Exists(ctx context.Context, name string) (bool, error)
	// Delete removes the content under name. Missing content is not an error.
	Delete(ctx context.Context, name string) error
}

// validName rejects names that would escape the store.
func validName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}

// New creates the Store selected by the storage config.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "filesystem", "":
		if cfg.Root == "" {
			return nil, fmt.Errorf("filesystem storage requires root to be set")
		}
		return NewFileSystem(cfg.Root)
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("s3 storage requires bucket to be set")
		}
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
