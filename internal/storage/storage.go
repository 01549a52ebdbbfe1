package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/dukerupert/tradeline/internal"
)

// Storage is a write-only object archive. The gateway uses it to keep a
// copy of uploaded receipt images next to the parsed result.
type Storage interface {
	// Put stores content under key and returns the URL it can be fetched from.
	// Keys are slash-separated (e.g. "receipts/{user}/{id}.jpg").
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
}

// NewStorage creates a Storage implementation based on configuration.
// It returns a nil Storage for the "none" provider; callers treat that as
// archiving disabled.
func NewStorage(cfg internal.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "none", "":
		return nil, nil
	case "local":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	case "r2":
		return NewR2Storage(R2Config{
			AccountID:   cfg.R2AccountID,
			AccessKeyID: cfg.R2AccessKeyID,
			SecretKey:   cfg.R2SecretKey,
			BucketName:  cfg.R2BucketName,
			PublicURL:   cfg.R2PublicURL,
		})
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}

// cleanKey rejects keys that are empty, absolute or escape the archive root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey(key)
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey(key)
	}
	return cleaned, nil
}
