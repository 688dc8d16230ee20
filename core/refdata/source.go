package refdata

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"networth/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens a named reference table.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// StorageSource reads tables from an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source reading prefix+name from bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

// Open downloads the object for name.
func (s *StorageSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.prefix+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from bucket %s: %w", s.prefix+name, s.bucket, err)
	}
	return obj, nil
}

// DirSource reads tables from a local directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a source reading files from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Open opens dir/name.
func (s *DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

// NewSource picks the source described by cfg. client may be nil when the
// configuration reads from a directory.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("reference source %q requires a storage client", cfg.Source)
		}
		return NewStorageSource(client, bucket, cfg.Prefix), nil
	case SourceDir:
		return NewDirSource(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unknown reference source %q", cfg.Source)
	}
}
