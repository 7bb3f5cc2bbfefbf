// Package loader retrieves the customer dataset from its static location.
//
// A location is a local path, a file:// URL, an http(s):// URL or an
// s3://bucket/key object reference. Locations ending in .gz or .zst are
// decompressed transparently. The loader performs exactly one retrieval per
// call and never retries.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/errors"
	"github.com/Iron-Ham/custsearch/internal/logging"
)

// Options configures a Loader.
type Options struct {
	// HTTPClient is used for http(s) locations. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// S3 configures s3:// locations.
	S3 S3Options
	// Logger receives load diagnostics. Defaults to a no-op logger.
	Logger *logging.Logger
}

// Loader fetches and decodes datasets.
type Loader struct {
	httpClient *http.Client
	s3         S3Options
	logger     *logging.Logger
}

// New creates a Loader.
func New(opts Options) *Loader {
	l := &Loader{
		httpClient: opts.HTTPClient,
		s3:         opts.S3,
		logger:     opts.Logger,
	}
	if l.httpClient == nil {
		l.httpClient = http.DefaultClient
	}
	if l.logger == nil {
		l.logger = logging.NopLogger()
	}
	return l
}

// Load retrieves location once and decodes it as a JSON array of records.
// All failures are returned as *errors.LoadError.
func (l *Loader) Load(ctx context.Context, location string) (customer.Dataset, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, errors.NewLoadError("load canceled", errors.Join(errors.ErrCanceled, err)).
			WithLocation(location).
			WithSeverity(errors.SeverityInfo)
	}

	rc, err := l.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	body, err := decompress(location, rc)
	if err != nil {
		return nil, errors.NewLoadError("decompressing dataset", fmt.Errorf("%w: %v", errors.ErrMalformedDataset, err)).
			WithLocation(location)
	}
	defer body.Close()

	ds, err := customer.Decode(body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.NewLoadError("load canceled", errors.Join(errors.ErrCanceled, ctxErr)).
				WithLocation(location).
				WithSeverity(errors.SeverityInfo)
		}
		return nil, errors.NewLoadError("decoding dataset", fmt.Errorf("%w: %v", errors.ErrMalformedDataset, err)).
			WithLocation(location)
	}

	l.logger.Debug("dataset loaded",
		"location", location,
		"records", ds.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ds, nil
}

// open resolves location to a readable stream.
func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch scheme := schemeOf(location); scheme {
	case "":
		return openFile(location)
	case "file":
		u, err := url.Parse(location)
		if err != nil {
			return nil, errors.NewLoadError("parsing location", errors.Join(errors.ErrUnsupportedSource, err)).
				WithLocation(location)
		}
		p := u.Path
		if u.Host != "" && u.Host != "localhost" {
			p = u.Host + u.Path
		}
		return openFile(p)
	case "http", "https":
		return l.openHTTP(ctx, location)
	case "s3":
		return l.openS3(ctx, location)
	default:
		return nil, errors.NewLoadError(fmt.Sprintf("scheme %q", scheme), errors.ErrUnsupportedSource).
			WithLocation(location)
	}
}

func openFile(p string) (io.ReadCloser, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.NewLoadError("opening dataset file", errors.Join(errors.ErrSourceUnavailable, err)).
			WithLocation(p)
	}
	return f, nil
}

func (l *Loader) openHTTP(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errors.NewLoadError("building request", errors.Join(errors.ErrUnsupportedSource, err)).
			WithLocation(location)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewLoadError("fetching dataset", errors.Join(errors.ErrSourceUnavailable, err)).
			WithLocation(location)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, errors.NewLoadError("fetching dataset", errors.ErrSourceUnavailable).
			WithLocation(location).
			WithStatus(resp.StatusCode)
	}
	return resp.Body, nil
}

// schemeOf returns the lower-cased URL scheme, or "" for plain paths.
// Windows drive letters ("C:\data") are treated as paths.
func schemeOf(location string) string {
	i := strings.Index(location, "://")
	if i <= 1 {
		return ""
	}
	return strings.ToLower(location[:i])
}

// compressionOf returns the compression implied by the location's extension.
func compressionOf(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".gz", ".gzip":
		return "gzip"
	case ".zst", ".zstd":
		return "zstd"
	default:
		return ""
	}
}

func decompress(location string, r io.Reader) (io.ReadCloser, error) {
	switch compressionOf(location) {
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case "zstd":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}
