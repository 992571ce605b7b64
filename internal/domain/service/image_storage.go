package service

import (
	"context"
	"io"
)

// ImageStorage stores uploaded images in a blob bucket and hands back
// stable URLs for the storefront to serve.
type ImageStorage interface {
	// Save writes the image under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes a stored image. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
