package loader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Iron-Ham/custsearch/internal/errors"
)

// S3Options configures access to S3-compatible object storage.
type S3Options struct {
	// Endpoint is the host[:port] of the object store (default s3.amazonaws.com).
	Endpoint string
	// Region is passed to the client; empty lets the client discover it.
	Region string
	// UseSSL selects https.
	UseSSL bool
}

// DefaultS3Endpoint is used when S3Options.Endpoint is empty.
const DefaultS3Endpoint = "s3.amazonaws.com"

// parseS3Location splits s3://bucket/key into its parts.
func parseS3Location(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", err
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("expected s3://bucket/key, got %q", location)
	}
	return bucket, key, nil
}

// s3Credentials resolves credentials from the environment and the shared
// AWS/MinIO credential files, in that order.
func s3Credentials() *credentials.Credentials {
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.EnvMinio{},
		&credentials.FileAWSCredentials{},
		&credentials.FileMinioClient{},
	})
}

func (l *Loader) openS3(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, errors.NewLoadError("parsing location", errors.Join(errors.ErrUnsupportedSource, err)).
			WithLocation(location)
	}

	endpoint := l.s3.Endpoint
	if endpoint == "" {
		endpoint = DefaultS3Endpoint
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  s3Credentials(),
		Secure: l.s3.UseSSL,
		Region: l.s3.Region,
	})
	if err != nil {
		return nil, errors.NewLoadError("creating object store client", errors.Join(errors.ErrSourceUnavailable, err)).
			WithLocation(location)
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.NewLoadError("fetching object", errors.Join(errors.ErrSourceUnavailable, err)).
			WithLocation(location)
	}

	// GetObject is lazy; Stat surfaces missing objects and auth failures now.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		le := errors.NewLoadError("fetching object", errors.Join(errors.ErrSourceUnavailable, err)).
			WithLocation(location)
		if resp := minio.ToErrorResponse(err); resp.StatusCode != 0 {
			le = le.WithStatus(resp.StatusCode)
		}
		return nil, le
	}

	l.logger.Debug("opened object", "bucket", bucket, "key", key, "endpoint", endpoint)
	return obj, nil
}
