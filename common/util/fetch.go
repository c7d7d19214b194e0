package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
)

// MaxFetchBytes caps remote background downloads.
const MaxFetchBytes = 10 << 20

// RemoteFetcher downloads template backgrounds given by URL.
type RemoteFetcher struct {
	client *retryablehttp.Client
	limit  int64
}

var _ issuance.Fetcher = (*RemoteFetcher)(nil)

func NewRemoteFetcher() *RemoteFetcher {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 2
	client.HTTPClient.Timeout = 10 * time.Second
	return &RemoteFetcher{client: client, limit: MaxFetchBytes}
}

func (f *RemoteFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: bad status: %s", url, resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(b)) > f.limit {
		return nil, fmt.Errorf("download %s: larger than %d bytes", url, f.limit)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("download %s: empty body", url)
	}
	return b, nil
}
