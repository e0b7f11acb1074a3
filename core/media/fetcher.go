package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/google-marketing-solutions/madpmax-sub000/core/storage"
)

// maxAssetBytes caps a single fetched asset. The platform rejects images
// anywhere near this size, so a larger read only wastes memory.
const maxAssetBytes = 32 << 20

// Fetcher retrieves the raw bytes of an asset referenced from a sheet cell.
type Fetcher interface {
	// Fetch resolves a reference (an http(s) URL, or an object path inside
	// the media bucket) to its content.
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

type fetcher struct {
	httpClient *http.Client
	store      storage.Client
	bucket     string
}

// NewFetcher creates a fetcher that serves http(s) URLs directly and any
// other reference from the media bucket. The storage client may be nil when
// no bucket is configured; bucket references then fail.
func NewFetcher(timeoutSeconds int, store storage.Client, bucket string) Fetcher {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	return &fetcher{
		httpClient: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		store:      store,
		bucket:     bucket,
	}
}

func (f *fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return f.fetchURL(ctx, ref)
	}
	return f.fetchObject(ctx, ref)
}

func (f *fetcher) fetchURL(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid asset url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset url %q returned status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %q: %w", rawURL, err)
	}
	return data, nil
}

func (f *fetcher) fetchObject(ctx context.Context, object string) ([]byte, error) {
	if f.store == nil {
		return nil, fmt.Errorf("no media bucket configured for reference %q", object)
	}

	reader, err := f.store.GetObject(ctx, f.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open media object %q: %w", object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read media object %q: %w", object, err)
	}
	return data, nil
}
