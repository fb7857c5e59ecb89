package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"

	"shop-audit/core/storage"
)

// ErrNotExist is returned (wrapped) when a workspace file is missing.
var ErrNotExist = errors.New("workspace file does not exist")

// Store reads inputs from and writes reports to a workspace.
type Store interface {
	// Open streams a file. A missing file yields an error wrapping ErrNotExist.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Save replaces a file with data.
	Save(ctx context.Context, name string, data []byte, contentType string) error
	// Exists reports whether a file is present.
	Exists(ctx context.Context, name string) (bool, error)
	// List returns the names of the files in the workspace.
	List(ctx context.Context) ([]string, error)
	// Location describes where name lives, for logs and errors.
	Location(name string) string
}

// New builds the Store selected by cfg.Backend. The bucket backend needs a
// storage client and the bucket name.
func New(cfg Config, client storage.Client, bucket string) (Store, error) {
	switch cfg.Backend {
	case BackendLocal, "":
		return NewDirStore(cfg.Dir), nil
	case BackendBucket:
		if client == nil {
			return nil, errors.New("bucket workspace requires a storage client")
		}
		if bucket == "" {
			return nil, errors.New("bucket workspace requires a bucket name")
		}
		return NewBucketStore(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown workspace backend %q", cfg.Backend)
	}
}
