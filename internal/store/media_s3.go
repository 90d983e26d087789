package store

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of *s3.Client used by the media store.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Overridable in tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3MediaStorage implements [MediaStorage] on top of an S3-compatible bucket.
// Object keys double as public ids: "<folder>/<uuid><ext>".
type s3MediaStorage struct {
	client        s3API
	bucket        string
	publicBaseURL string
	ids           *utils.UUIDGenerator
	logger        *logger.Logger
}

// NewS3MediaStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured, otherwise the default AWS chain applies.
// A custom endpoint (e.g. MinIO) is set through BaseEndpoint.
func NewS3MediaStorage(ctx context.Context, cfg config.Media, log *logger.Logger) (MediaStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3MediaStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info().Str("func", "NewS3MediaStorage").Str("bucket", cfg.Bucket).Msg("media storage configured")

	return newS3MediaStorage(client, cfg, log), nil
}

func newS3MediaStorage(client s3API, cfg config.Media, log *logger.Logger) *s3MediaStorage {
	return &s3MediaStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg),
		ids:           utils.NewUUIDGenerator(),
		logger:        log,
	}
}

// publicBaseURL returns the prefix under which objects of cfg.Bucket are
// fetchable.
func publicBaseURL(cfg config.Media) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (m *s3MediaStorage) Upload(ctx context.Context, folder string, file models.MediaFile) (models.Media, error) {
	log := logger.FromContext(ctx)

	if file.Content == nil || file.Size == 0 {
		return models.Media{}, ErrEmptyMedia
	}

	key := path.Join(folder, m.ids.Generate().String()+strings.ToLower(path.Ext(file.FileName)))

	input := &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
		Body:   file.Content,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := m.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3MediaStorage.Upload").Str("key", key).Msg("error uploading media")
		return models.Media{}, fmt.Errorf("%w: %w", ErrMediaUpload, err)
	}

	log.Debug().Str("func", "*s3MediaStorage.Upload").Str("key", key).Int64("size", file.Size).Msg("media uploaded")

	return models.Media{
		SecureURL: m.publicBaseURL + "/" + key,
		PublicID:  key,
	}, nil
}

// Destroy is a no-op for an empty publicID.
func (m *s3MediaStorage) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3MediaStorage.Destroy").Str("key", publicID).Msg("error destroying media")
		return fmt.Errorf("%w: %w", ErrMediaDestroy, err)
	}

	return nil
}
