// Package storage persists uploaded images in a blob bucket through the Go
// CDK, so local disk and cloud object stores are interchangeable via the
// bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local filesystem buckets
	_ "gocloud.dev/blob/memblob"  // in-memory buckets for tests
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the blob storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewImageStorage opens the configured bucket and returns it as a
// service.ImageStorage.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Save writes the image under the given key and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a stored image. Missing keys are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
