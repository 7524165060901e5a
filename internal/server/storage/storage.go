// Package storage persists uploaded image files and hands back the
// public URL path they will be served from.
package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/avoronova/imagevault/internal/common"
)

// FileStore writes an uploaded file under the given name and returns the
// src path clients use to fetch it.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// NewFilename builds a storage name for an upload: a nanosecond timestamp
// and a random suffix keep concurrent uploads of the same file apart.
// The original client filename never reaches the filesystem.
func NewFilename(contentType string) (string, error) {
	ext, err := extensionForMIME(contentType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), rand.IntN(1_000_000_000), ext), nil
}

func extensionForMIME(contentType string) (string, error) {
	switch contentType {
	case "image/png":
		return ".png", nil
	case "image/jpg", "image/jpeg":
		return ".jpg", nil
	}
	return "", fmt.Errorf("%w: %s", common.ErrorUnsupportedFormat, contentType)
}
