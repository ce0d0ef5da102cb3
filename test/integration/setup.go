package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mazee-site/internal/app"
	"mazee-site/internal/catalog"
	"mazee-site/internal/config"
	"mazee-site/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestAPIKey guards the admin routes of the test site.
const TestAPIKey = "test-api-key"

// TestConfig returns a configuration suitable for in-process tests.
func TestConfig(dataDir string) *config.Config {
	return &config.Config{
		Logger: config.LoggerConfig{Level: "error", Format: "json"},
		Site: config.SiteConfig{
			BaseURL:       "https://mazeegroup.net",
			DefaultLocale: model.LocaleEN,
		},
		Data: config.DataConfig{Dir: dataDir},
		Auth: config.AuthConfig{AdminAPIKey: TestAPIKey},
	}
}

// SetupSite builds the whole site over the embedded catalogue.
func SetupSite(t *testing.T) *app.App {
	t.Helper()

	logger := zerolog.Nop()
	site, err := app.New(context.Background(), TestConfig(""), catalog.NewFSLoader(catalog.EmbeddedFS(), "embedded", logger), logger)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}
	return site
}

// SetupDataDir copies the embedded English documents into a temporary
// directory and returns its path.
func SetupDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{catalog.ProductsDocument(model.LocaleEN), catalog.ProjectsDocument(model.LocaleEN)} {
		data, err := fsRead(name)
		if err != nil {
			t.Fatalf("failed to read embedded %s: %v", name, err)
		}
		WriteDocument(t, dir, name, data)
	}
	return dir
}

// WriteDocument writes a catalogue document below dir.
func WriteDocument(t *testing.T, dir, name string, data []byte) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func fsRead(name string) ([]byte, error) {
	return catalog.NewFSLoader(catalog.EmbeddedFS(), "embedded", zerolog.Nop()).Load(context.Background(), name)
}

// TestS3 represents an S3-compatible object store for catalogue documents.
type TestS3 struct {
	Container *minio.MinioContainer
	Client    *s3.Client
	Endpoint  string
	Bucket    string
	Region    string
}

// SetupS3 starts a MinIO container with an empty bucket and exports its
// credentials through the AWS environment variables.
func SetupS3(t *testing.T) *TestS3 {
	t.Helper()

	ctx := context.Background()

	// Create MinIO container
	minioContainer, err := minio.Run(ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		minio.WithUsername("testuser"),
		minio.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/minio/health/live").
				WithPort("9000/tcp").
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start minio container: %v", err)
	}

	t.Cleanup(func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate minio container: %v", err)
		}
	})

	hostPort, err := minioContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get minio address: %v", err)
	}

	ts := &TestS3{
		Container: minioContainer,
		Endpoint:  "http://" + hostPort,
		Bucket:    "mazee-catalog",
		Region:    "us-east-1",
	}

	t.Setenv("AWS_ACCESS_KEY_ID", minioContainer.Username)
	t.Setenv("AWS_SECRET_ACCESS_KEY", minioContainer.Password)
	t.Setenv("AWS_REGION", ts.Region)

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(ts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(minioContainer.Username, minioContainer.Password, "")),
	)
	if err != nil {
		t.Fatalf("failed to load AWS configuration: %v", err)
	}
	ts.Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(ts.Endpoint)
		o.UsePathStyle = true
	})

	if _, err := ts.Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(ts.Bucket)}); err != nil {
		t.Fatalf("failed to create bucket: %v", err)
	}

	return ts
}

// Config returns a site configuration reading documents below prefix in the
// bucket, with dataDir (or the embedded documents) as the local fallback.
func (ts *TestS3) Config(dataDir, prefix string) *config.Config {
	cfg := TestConfig(dataDir)
	cfg.S3 = config.S3Config{
		Enabled:  true,
		Bucket:   ts.Bucket,
		Region:   ts.Region,
		Prefix:   prefix,
		Endpoint: ts.Endpoint,
	}
	return cfg
}

// PutObject stores data under key.
func (ts *TestS3) PutObject(t *testing.T, key string, data []byte) {
	t.Helper()

	_, err := ts.Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(ts.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		t.Fatalf("failed to put %s: %v", key, err)
	}
}
