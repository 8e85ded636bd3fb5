// Package storage holds the S3-compatible object store used for property media.
// Uploads stream straight from the request; nothing touches local disk.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable is returned when no object store is configured.
var ErrUnavailable = errors.New("object storage is not configured")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is the media object store.
type Storage interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// URL returns an address clients can fetch the object from.
	URL(ctx context.Context, key string) (string, error)
}

// Unavailable is the Storage used when MinIO is not configured.
type Unavailable struct{}

var _ Storage = Unavailable{}

func (Unavailable) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrUnavailable
}

func (Unavailable) Delete(context.Context, string) error { return ErrUnavailable }

func (Unavailable) URL(context.Context, string) (string, error) { return "", ErrUnavailable }
