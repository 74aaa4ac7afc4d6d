package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/emberwick/storefront-api/pkg/config"
	"github.com/emberwick/storefront-api/pkg/gcp"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const uploadTimeout = 2 * time.Minute

var errBucketRequired = errors.New("gcs bucket name is required")

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// objectStore is the slice of the storage API the client relies on.
type objectStore interface {
	NewWriter(ctx context.Context, key, contentType string) io.WriteCloser
	Delete(ctx context.Context, key string) error
	Attrs(ctx context.Context) error
	Close() error
}

// Client uploads product imagery to a single public bucket.
type Client struct {
	store      objectStore
	bucket     string
	publicBase string
	prefix     string
}

// NewClient dials Cloud Storage using the configured credentials.
func NewClient(ctx context.Context, cfg config.GCSConfig, gcpCfg config.GCPConfig, logg *logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BucketName) == "" {
		return nil, errBucketRequired
	}

	opts := gcp.ClientOptions(gcpCfg)
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	stClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "bucket", cfg.BucketName), "gcs client initialized")
	}

	return newClient(&gcsStore{client: stClient, bucket: cfg.BucketName}, cfg), nil
}

func newClient(store objectStore, cfg config.GCSConfig) *Client {
	return &Client{
		store:      store,
		bucket:     cfg.BucketName,
		publicBase: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		prefix:     strings.Trim(strings.TrimSpace(cfg.ObjectPrefix), "/"),
	}
}

// ObjectKey builds a collision-free object key that keeps the original extension.
func (c *Client) ObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	name := uuid.NewString() + ext
	if c.prefix == "" {
		return name
	}
	return c.prefix + "/" + name
}

// PublicURL returns the browser-facing URL for key.
func (c *Client) PublicURL(key string) string {
	base := c.publicBase
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	return fmt.Sprintf("%s/%s/%s", base, c.bucket, strings.TrimLeft(key, "/"))
}

// Upload streams body into key and returns its public URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if c == nil || c.store == nil {
		return "", errors.New("gcs client not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := c.store.NewWriter(ctx, key, contentType)
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("writing object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing object %q: %w", key, err)
	}
	return c.PublicURL(key), nil
}

// Delete removes key. Missing objects are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.store == nil {
		return errors.New("gcs client not initialized")
	}
	err := c.store.Delete(ctx, key)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

// Ping confirms the bucket is reachable with the current credentials.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.store == nil {
		return errors.New("gcs client not initialized")
	}
	return c.store.Attrs(ctx)
}

// Close releases the underlying storage client.
func (c *Client) Close() error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Close()
}

type gcsStore struct {
	client *storage.Client
	bucket string
}

func (s *gcsStore) NewWriter(ctx context.Context, key, contentType string) io.WriteCloser {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"
	return w
}

func (s *gcsStore) Delete(ctx context.Context, key string) error {
	return s.client.Bucket(s.bucket).Object(key).Delete(ctx)
}

func (s *gcsStore) Attrs(ctx context.Context) error {
	_, err := s.client.Bucket(s.bucket).Attrs(ctx)
	return err
}

func (s *gcsStore) Close() error {
	return s.client.Close()
}
