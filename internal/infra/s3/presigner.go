// Package s3 holds the presigner behind the downloads page. Installer
// binaries live in a private bucket; the API hands out short-lived GET links
// instead of proxying the bytes.
package s3

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"backup-admin/internal/config"
	"backup-admin/internal/infra/cache"
)

// Presigner wraps the S3 service client for generating download links.
type Presigner struct {
	bucketName string
	urlExpiry  time.Duration
	svc        *s3.S3
}

// NewPresigner creates a presigner from the AWS portion of the config.
func NewPresigner(cfg *config.Config) (*Presigner, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Presigner{
		bucketName: cfg.Downloads.Bucket,
		urlExpiry:  cfg.Downloads.URLExpiry,
		svc:        s3.New(sess),
	}, nil
}

// PresignGet returns a time-limited GET URL for objectKey, serving from the
// cache when a still-valid link exists.
func (p *Presigner) PresignGet(objectKey string, urlCache *cache.URLCache) (string, error) {
	if url, found := urlCache.Get(objectKey); found {
		return url, nil
	}

	req, _ := p.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(p.bucketName),
		Key:    aws.String(objectKey),
	})

	url, err := req.Presign(p.urlExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", objectKey, err)
	}

	// Expire the cache entry slightly before the link itself so a cached
	// link is never handed out already dead.
	urlCache.Set(objectKey, url, time.Now().Add(p.urlExpiry-time.Minute))

	return url, nil
}
