// Package blobstore stores catalog exports in a gocloud bucket.
package blobstore

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type bucketStorage struct {
	bucket *blob.Bucket
	base   string
}

// OpenExportStorage opens the bucket named by a gocloud URL such as file:///tmp/exports, gs://bucket or mem://
func OpenExportStorage(ctx context.Context, bucketURL string) (service.ExportStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &bucketStorage{
		bucket: bucket,
		base:   locatorBase(bucketURL),
	}, nil
}

// Write stores content under key and returns "<bucket>/<key>"
func (s *bucketStorage) Write(ctx context.Context, key, contentType string, content []byte) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return "", errors.New("export key is empty")
	}

	err := s.bucket.WriteAll(ctx, key, content, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.base + "/" + key, nil
}

// Close releases the bucket
func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func locatorBase(bucketURL string) string {
	parsed, err := url.Parse(bucketURL)
	if err != nil {
		return strings.TrimSuffix(bucketURL, "/")
	}
	parsed.RawQuery = ""

	return strings.TrimSuffix(parsed.String(), "/")
}

// StorageParams holds dependencies for the export storage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// StorageResult exposes the export storage; it is nil when no bucket is configured
type StorageResult struct {
	fx.Out

	Storage service.ExportStorage
}

// NewExportStorage opens the configured export bucket
func NewExportStorage(params StorageParams) (StorageResult, error) {
	cfg := params.Config.Export
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Export bucket not configured, catalog archiving disabled")

		return StorageResult{}, nil
	}

	storage, err := OpenExportStorage(params.Ctx, cfg.BucketURL)
	if err != nil {
		return StorageResult{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close()
		},
	})

	params.Logger.Info("Export bucket opened", slog.String("bucket", cfg.BucketURL))

	return StorageResult{Storage: storage}, nil
}

// Module provides the export storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewExportStorage),
)
