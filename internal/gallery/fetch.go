package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vincent-petithory/dataurl"

	"stylist/internal/domain"
	"stylist/internal/imagestore"
)

// Fetcher turns an outfit URL back into bytes: data URLs are decoded in
// process, http(s) URLs are downloaded.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(client *http.Client, maxBytes int64) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Fetcher{client: client, maxBytes: maxBytes}
}

// Fetch returns the image bytes and MIME type behind url. Every failure is a
// *domain.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	data, mime, err := f.fetch(ctx, strings.TrimSpace(url))
	if err != nil {
		return nil, "", &domain.FetchError{URL: url, Err: err}
	}
	if len(data) == 0 {
		return nil, "", &domain.FetchError{URL: url, Err: errors.New("image is empty")}
	}
	return data, imagestore.Detect(data, mime), nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, string, error) {
	switch {
	case strings.HasPrefix(url, "data:"):
		du, err := dataurl.DecodeString(url)
		if err != nil {
			return nil, "", fmt.Errorf("decode data url: %w", err)
		}
		return du.Data, du.ContentType(), nil
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return f.download(ctx, url)
	default:
		return nil, "", errors.New("unsupported image URL")
	}
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", fmt.Errorf("image exceeds %d bytes", f.maxBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
