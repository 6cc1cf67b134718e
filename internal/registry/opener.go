package registry

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"solarcast/internal/common/fsutil"
)

// Opener resolves an artifact location to a readable stream.
type Opener interface {
	Open(ctx context.Context, loc string) (io.ReadCloser, error)
}

// FileOpener reads artifacts from the local filesystem. A leading '~' is
// expanded to the user's home directory.
type FileOpener struct{}

func (FileOpener) Open(_ context.Context, loc string) (io.ReadCloser, error) {
	p, err := fsutil.ResolveFile(loc)
	if err != nil {
		return nil, fmt.Errorf("artifact: %w", err)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	return f, nil
}

// ObjectStoreConfig holds S3-compatible connection settings.
type ObjectStoreConfig struct {
	Endpoint  string // e.g., "localhost:9000"
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ObjectOpener reads s3://bucket/key locations through MinIO and falls back
// to Local for everything else.
type ObjectOpener struct {
	client *minio.Client
	Local  Opener
}

// NewObjectOpener creates a MinIO-backed opener. No network call is made until Open.
func NewObjectOpener(cfg ObjectStoreConfig) (*ObjectOpener, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &ObjectOpener{client: client, Local: FileOpener{}}, nil
}

func (o *ObjectOpener) Open(ctx context.Context, loc string) (io.ReadCloser, error) {
	bucket, key, ok, err := ParseObjectURI(loc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return o.Local.Open(ctx, loc)
	}
	obj, err := o.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from object store: %w", loc, err)
	}
	// GetObject is lazy; Stat surfaces missing objects before decoding.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", loc, err)
	}
	return obj, nil
}

// ParseObjectURI splits s3://bucket/key. ok is false for non-s3 locations.
func ParseObjectURI(loc string) (bucket, key string, ok bool, err error) {
	if !strings.HasPrefix(strings.ToLower(loc), "s3://") {
		return "", "", false, nil
	}
	u, err := url.Parse(loc)
	if err != nil {
		return "", "", true, fmt.Errorf("invalid object uri %q: %w", loc, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", true, fmt.Errorf("invalid object uri %q: want s3://bucket/key", loc)
	}
	return u.Host, key, true, nil
}

// RequiresObjectStore reports whether any source points at an object store.
func (s Sources) RequiresObjectStore() bool {
	for _, loc := range s {
		if _, _, ok, _ := ParseObjectURI(loc); ok {
			return true
		}
	}
	return false
}
