// Package storage issues presigned S3 upload URLs.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"cobalt/internal/platform/config"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
	"cobalt/pkg/validation"
)

const metadataHeaderPrefix = "x-amz-meta-"

// PresignedUpload describes a PUT a client performs directly against the bucket.
type PresignedUpload struct {
	HTTPMethod          string
	URL                 string
	AccessURL           string
	ContentType         string
	ExpirationTimestamp time.Time
	HTTPHeaders         map[string]string
}

// PutRequest names the object to upload.
type PutRequest struct {
	Key         string
	ContentType string
	Metadata    map[string]string
}

// UploadManager presigns PutObject requests.
type UploadManager struct {
	client     *s3.S3
	bucket     string
	expiration time.Duration
}

// NewUploadManager builds an S3 client from cfg. Localstack endpoints use path-style
// addressing.
func NewUploadManager(cfg config.Uploads) (*UploadManager, error) {
	if cfg.Bucket == "" {
		return nil, dErrors.Required("upload bucket")
	}
	if cfg.Expiration() <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "upload expiration must be positive")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.UseLocalstack {
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return &UploadManager{
		client:     s3.New(sess),
		bucket:     cfg.Bucket,
		expiration: cfg.Expiration(),
	}, nil
}

// PresignPut returns a presigned PUT URL for req. Metadata entries are signed as
// x-amz-meta-* headers the client must send unchanged.
func (m *UploadManager) PresignPut(ctx context.Context, req PutRequest) (*PresignedUpload, error) {
	if strings.TrimSpace(req.Key) == "" {
		return nil, dErrors.Required("object key")
	}
	if strings.TrimSpace(req.ContentType) == "" {
		return nil, dErrors.Required("content type")
	}
	if err := validation.CheckSliceCount("metadata entries", len(req.Metadata), validation.MaxUploadMetadataEntries); err != nil {
		return nil, err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(req.Key),
		ContentType: aws.String(req.ContentType),
	}
	headers := map[string]string{"Content-Type": req.ContentType}
	if len(req.Metadata) > 0 {
		input.Metadata = make(map[string]*string, len(req.Metadata))
		for k, v := range req.Metadata {
			name := strings.ToLower(k)
			input.Metadata[name] = aws.String(v)
			headers[metadataHeaderPrefix+name] = v
		}
	}

	putReq, _ := m.client.PutObjectRequest(input)
	putReq.SetContext(ctx)
	signed, err := putReq.Presign(m.expiration)
	if err != nil {
		return nil, fmt.Errorf("presign put object: %w", err)
	}

	return &PresignedUpload{
		HTTPMethod:          "PUT",
		URL:                 signed,
		AccessURL:           withoutQuery(signed),
		ContentType:         req.ContentType,
		ExpirationTimestamp: requestcontext.Now(ctx).Add(m.expiration),
		HTTPHeaders:         headers,
	}, nil
}

// HeaderNames returns the header names of u in sorted order.
func (u *PresignedUpload) HeaderNames() []string {
	names := make([]string, 0, len(u.HTTPHeaders))
	for k := range u.HTTPHeaders {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func withoutQuery(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}
