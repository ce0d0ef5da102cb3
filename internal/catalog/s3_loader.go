package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used by the loader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for catalogue documents stored in AWS S3.
type s3Loader struct {
	client ObjectGetter
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader using the default
// AWS credential chain. A non-empty endpoint points the client at an
// S3-compatible store.
func NewS3Loader(ctx context.Context, bucket, region, prefix, endpoint string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-catalog-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Str("endpoint", endpoint).
		Msg("S3 loader initialised")

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3LoaderWithClient(client, bucket, prefix, logger), nil
}

// NewS3LoaderWithClient creates an S3 loader around an existing client.
func NewS3LoaderWithClient(client ObjectGetter, bucket, prefix string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Load reads prefix+name from the bucket.
func (l *s3Loader) Load(ctx context.Context, name string) ([]byte, error) {
	key := l.prefix + name

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			l.logger.Debug().Str("key", key).Msg("catalog object missing")
			return nil, fmt.Errorf("s3://%s/%s: %w", l.bucket, key, ErrNotFound)
		}
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("error reading catalog object from S3")
		return nil, fmt.Errorf("error reading catalog object from S3 %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("bytes", len(data)).
		Msg("catalog object loaded from S3")

	return data, nil
}

// fallbackLoader tries a remote loader first, then the local one.
type fallbackLoader struct {
	remote Loader
	local  Loader
	logger zerolog.Logger
}

// NewFallbackLoader creates a loader that tries remote first and falls back
// to local on any error. If remote is nil only local is used.
func NewFallbackLoader(remote, local Loader, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		remote: remote,
		local:  local,
		logger: logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts the remote loader, then the local one.
func (l *fallbackLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if l.remote != nil {
		data, err := l.remote.Load(ctx, name)
		if err == nil {
			return data, nil
		}

		l.logger.Warn().
			Err(err).
			Str("document", name).
			Msg("failed to load from remote source, falling back to local data")
	}

	return l.local.Load(ctx, name)
}
