package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/talentwire/article-service/internal/logger"
)

// BucketService is the object-store gateway. EnsureBucket runs once at
// startup; Upload/Delete are per-request. PublicURL does no I/O.
type BucketService interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) bool
	PublicURL(key string) string
}

type BucketConfig struct {
	BucketName      string
	ProjectID       string
	EmulatorHost    string
	PublicBaseURL   string
	CredentialsFile string
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	bucketName    string
	projectID     string
	emulatorHost  string
	publicBaseURL string
}

func NewBucketService(cfg BucketConfig, log *logger.Logger) (BucketService, error) {
	serviceLog := log.With("service", "BucketService")
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is not configured")
	}

	ctx := context.Background()
	stClient, err := newStorageClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	serviceLog.Info("Object storage initialized",
		"bucket", cfg.BucketName,
		"emulator_host", cfg.EmulatorHost,
		"public_base_url", cfg.PublicBaseURL,
	)

	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		bucketName:    cfg.BucketName,
		projectID:     cfg.ProjectID,
		emulatorHost:  strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/"),
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
	}, nil
}

func newStorageClient(ctx context.Context, cfg BucketConfig) (*storage.Client, error) {
	if cfg.EmulatorHost != "" {
		endpoint := strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/")
		_ = os.Setenv("STORAGE_EMULATOR_HOST", endpoint)
		return storage.NewClient(ctx, option.WithoutAuthentication())
	}
	if cfg.CredentialsFile != "" {
		return storage.NewClient(ctx,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(storage.ScopeReadWrite))
	}
	return storage.NewClient(ctx, option.WithScopes(storage.ScopeReadWrite))
}

// EnsureBucket creates the bucket on first start and opens it for public
// reads so stored articles resolve by URL. Existing buckets are untouched.
func (bs *bucketService) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	bucket := bs.storageClient.Bucket(bs.bucketName)
	_, err := bucket.Attrs(ctx)
	if err == nil {
		bs.log.Info("Bucket already exists", "bucket", bs.bucketName)
		return nil
	}
	if !errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("failed to check bucket %q: %w", bs.bucketName, err)
	}

	if err := bucket.Create(ctx, bs.projectID, nil); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", bs.bucketName, err)
	}
	bs.log.Info("Bucket created", "bucket", bs.bucketName)

	policy, err := bucket.IAM().Policy(ctx)
	if err != nil {
		return fmt.Errorf("failed to read bucket policy for %q: %w", bs.bucketName, err)
	}
	policy.Add(iam.AllUsers, "roles/storage.objectViewer")
	if err := bucket.IAM().SetPolicy(ctx, policy); err != nil {
		return fmt.Errorf("failed to set public-read policy on %q: %w", bs.bucketName, err)
	}
	bs.log.Info("Public-read policy set", "bucket", bs.bucketName)
	return nil
}

func (bs *bucketService) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := bs.storageClient.Bucket(bs.bucketName).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finish object %q: %w", key, err)
	}

	publicURL := bs.PublicURL(key)
	bs.log.Info("Object uploaded", "key", key, "public_url", publicURL)
	return publicURL, nil
}

// Delete is best effort: cleanup flows must not fail on a missing or
// unreachable object, so errors are logged and swallowed.
func (bs *bucketService) Delete(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := bs.storageClient.Bucket(bs.bucketName).Object(key).Delete(ctx); err != nil {
		bs.log.Warn("Failed to delete object", "key", key, "error", err)
		return false
	}
	bs.log.Info("Object deleted", "key", key)
	return true
}

func (bs *bucketService) PublicURL(key string) string {
	if bs.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", bs.publicBaseURL, key)
	}
	if bs.emulatorHost != "" {
		return fmt.Sprintf("%s/%s/%s", bs.emulatorHost, bs.bucketName, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bs.bucketName, key)
}
