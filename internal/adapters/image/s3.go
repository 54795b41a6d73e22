package image

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"devevent/internal/domain"
)

// S3Config holds configuration for the S3-backed image store.
type S3Config struct {
	Bucket string
	Region string
	// PublicBaseURL, when set, is used instead of the default S3 URL when
	// building the public image URL (e.g. a CDN domain in front of the bucket).
	PublicBaseURL string
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewS3Store creates an ImageStore that uploads event images to S3 and
// returns their public URLs. Credentials come from the default AWS chain.
func NewS3Store(ctx context.Context, cfg S3Config) (domain.ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &s3Store{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	// Random object key; the original filename only contributes its extension.
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("events/%s%s", uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("putting object to S3: %w", err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
