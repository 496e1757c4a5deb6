package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/google/uuid"
)

// ObjectPutter is the slice of the S3 API used for direct uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Settings configures NewS3Client.
type S3Settings struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// NewS3Client builds an S3 client. A non-empty BaseEndpoint selects
// path-style addressing, as MinIO expects.
func NewS3Client(ctx context.Context, s S3Settings) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.Region)}
	if s.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, "")))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3Uploader writes the file straight to object storage and then registers
// it with POST /api/documents.
type S3Uploader struct {
	api    *HTTPClient
	store  ObjectPutter
	bucket string
	newKey func(owner models.ID, name string) string
}

func NewS3Uploader(api *HTTPClient, store ObjectPutter, bucket string) *S3Uploader {
	return &S3Uploader{api: api, store: store, bucket: bucket, newKey: StorageKey}
}

// StorageKey is documents/<owner>/<uuid>-<file name>.
func StorageKey(owner models.ID, name string) string {
	return path.Join("documents", owner.String(), uuid.NewString()+"-"+path.Base(name))
}

func (u *S3Uploader) UploadDocument(ctx context.Context, up Upload, progress ProgressFunc) error {
	if up.OwnerID == "" {
		return ErrUnauthorized
	}

	body, ok := up.Body.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(up.Body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	tracker := newProgressTracker(up.Size, progress)
	key := u.newKey(up.OwnerID, up.FileName)

	_, err := u.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          tracker.readSeeker(body),
		ContentLength: aws.Int64(up.Size),
		ContentType:   aws.String(up.MimeType),
	})
	if err != nil {
		return fmt.Errorf("%w: put object: %v", ErrUnavailable, err)
	}

	doc := models.StoredDocument{
		DocumentMeta: up.Meta,
		StorageKey:   key,
		Name:         up.FileName,
		Size:         up.Size,
		MimeType:     up.MimeType,
	}
	if err := u.api.Do(ctx, http.MethodPost, "/api/documents", doc, true, nil); err != nil {
		return err
	}
	tracker.done()
	return nil
}
