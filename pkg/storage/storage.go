package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var ErrNotFound = errors.New("object not found")

// Storage is the blob store used for published documents.
type Storage interface {
	// Upload stores data under key, replacing any previous object
	Upload(ctx context.Context, key, contentType string, data io.Reader) error

	// Download retrieves an object; ErrNotFound when absent
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object
	Delete(ctx context.Context, key string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal, "":
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for S3 storage")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// cleanKey rejects keys that would escape the storage root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return cleaned, nil
}
