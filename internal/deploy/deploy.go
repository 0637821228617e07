// Package deploy uploads rendered output to S3.
package deploy

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader copies a local directory tree into an S3 bucket.
//
// Example usage:
//
//	cfg, _ := awsconfig.LoadDefaultConfig(ctx)
//	up := deploy.New(s3.NewFromConfig(cfg), "my-bucket", "site/", nil)
//	n, err := up.UploadDir(ctx, "dist")
type Uploader struct {
	client ObjectPutter
	bucket string
	prefix string
	log    *slog.Logger
}

// New creates an uploader for the given bucket and key prefix.
// If logger is nil, slog.Default() is used.
func New(client ObjectPutter, bucket, prefix string, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    logger,
	}
}

// NewFromDefaultConfig builds an uploader with an S3 client from the SDK's
// default resolution chain. Region overrides the resolved region when
// non-empty.
func NewFromDefaultConfig(ctx context.Context, region, bucket, prefix string, logger *slog.Logger) (*Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return New(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

// UploadDir uploads every regular file under dir, preserving relative
// paths below the key prefix. It returns the number of objects uploaded.
func (u *Uploader) UploadDir(ctx context.Context, dir string) (int, error) {
	uploaded := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := u.prefix + filepath.ToSlash(rel)

		if err := u.uploadFile(ctx, path, key); err != nil {
			return fmt.Errorf("upload %s: %w", rel, err)
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}

	u.log.Info("deploy complete", "bucket", u.bucket, "objects", uploaded)
	return uploaded, nil
}

// uploadFile puts one file to S3.
func (u *Uploader) uploadFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(path)),
	})
	if err != nil {
		return err
	}

	u.log.Info("uploaded", "key", key)
	return nil
}

// contentType guesses a Content-Type from the file extension.
func contentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
