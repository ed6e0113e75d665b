package resource

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// Fetcher is the injected network capability. The loader and the remote
// lookup clients never talk to the network any other way, so tests swap
// in counting or canned fetchers.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher is the default Fetcher, a thin resty wrapper with a short
// retry on transient failures.
type HTTPFetcher struct {
	client   *resty.Client
	attempts uint
}

// NewHTTPFetcher creates the default fetcher.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:   resty.New().SetTimeout(20 * time.Second),
		attempts: 2,
	}
}

// Fetch retrieves url, treating any non-200 status as an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			res, err := f.client.R().SetContext(ctx).Get(url)
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() == http.StatusNotFound {
				// Not transient, no point retrying.
				return retry.Unrecoverable(fmt.Errorf("status code: %d", res.StatusCode()))
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
			}
			body = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}
