package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"escola_crm/internal/usecase/interfaces"
)

// HTTPDownloader fetches remote artifacts (signed files, gallery images).
//
// Downloads intentionally carry no client timeout: signed files can be
// large and the provider gives no size hint. Callers bound the wait through
// ctx when they need to.

type HTTPDownloader struct {
	client *http.Client
}

var _ interfaces.IFileDownloader = (*HTTPDownloader)(nil)

func NewHTTPDownloader() *HTTPDownloader {
	return &HTTPDownloader{client: &http.Client{}}
}

func (d *HTTPDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
