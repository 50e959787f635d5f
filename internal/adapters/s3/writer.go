// Package s3 publishes rendered source entries to an S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/aptsrc/internal/adapters/config"
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

const contentType = "text/plain; charset=utf-8"

var _ ports.EntryWriter = (*Writer)(nil)

// ObjectAPI is the subset of the S3 client used by Writer.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Writer implements ports.EntryWriter on a bucket. Objects are keyed
// <prefix><filename>.
type Writer struct {
	api    ObjectAPI
	bucket string
	prefix string
}

// NewWriter creates a Writer over an existing client.
func NewWriter(api ObjectAPI, bucket, prefix string) *Writer {
	return &Writer{api: api, bucket: bucket, prefix: prefix}
}

// NewClient creates a path-style S3 client with static credentials.
func NewClient(cfg config.S3Settings) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		opts.BaseEndpoint = aws.String(endpoint)
	}
	return s3.New(opts)
}

// Key returns the object key of an entry.
func (w *Writer) Key(entry domain.SourceEntry) string {
	return w.prefix + entry.Filename
}

// Write uploads the entry when the stored object differs, or deletes the
// object when the entry is absent.
func (w *Writer) Write(ctx context.Context, entry domain.SourceEntry) (bool, error) {
	key := w.Key(entry)

	current, exists, err := w.fetch(ctx, key)
	if err != nil {
		return false, err
	}

	if entry.Ensure == domain.EnsureAbsent {
		if !exists {
			return false, nil
		}
		if _, err := w.api.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(w.bucket),
			Key:    aws.String(key),
		}); err != nil {
			return false, w.fail(err, domain.ErrEntryRemoveFailed, key)
		}
		return true, nil
	}

	if exists && current == xxhash.Sum64String(entry.Content) {
		return false, nil
	}

	if _, err := w.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(entry.Content)),
		ContentType: aws.String(contentType),
	}); err != nil {
		return false, w.fail(err, domain.ErrEntryWriteFailed, key)
	}
	return true, nil
}

// fetch returns the content hash of the stored object.
func (w *Writer) fetch(ctx context.Context, key string) (uint64, bool, error) {
	out, err := w.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return 0, false, nil
		}
		return 0, false, w.fail(err, domain.ErrEntryReadFailed, key)
	}
	defer out.Body.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, out.Body); err != nil {
		return 0, false, w.fail(err, domain.ErrEntryReadFailed, key)
	}
	return hasher.Sum64(), true, nil
}

func (w *Writer) fail(err, sentinel error, key string) error {
	wrapped := zerr.With(fmt.Errorf("%w: %w", sentinel, err), "bucket", w.bucket)
	return zerr.With(wrapped, "key", key)
}
