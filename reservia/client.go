package reservia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultBaseURL is the production train status endpoint.
const DefaultBaseURL = "http://reservia.viarail.ca/tsi/GetTrainStatus.aspx"

// Client fetches train status pages over HTTP. Transient failures (network
// errors and 5xx responses) are retried with exponential backoff; trip-level
// conditions in the page body are not retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries uint64
}

// NewClient creates a train status client. An empty baseURL selects the
// production endpoint; maxRetries is the number of retries after the first
// attempt.
func NewClient(baseURL string, timeout time.Duration, maxRetries uint64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		maxRetries: maxRetries,
	}
}

// TrainStatus fetches and parses the status page for one train and service
// date. Returns ErrTripNotFound or ErrTripIncomplete for the two upstream
// conditions the page can signal.
func (c *Client) TrainStatus(ctx context.Context, train int, date string) ([]StationRow, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("reservia: bad base URL %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("TsiCCode", "VIA")
	q.Set("TsiTrainNumber", strconv.Itoa(train))
	q.Set("ArrivalDate", date)
	u.RawQuery = q.Encode()

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	body, err := backoff.RetryWithData(func() ([]byte, error) {
		return c.fetch(ctx, u.String())
	}, b)
	if err != nil {
		return nil, fmt.Errorf("reservia: fetch train %d on %s: %w", train, date, err)
	}

	return ParseTrainStatus(body)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("HTTP %d from %s", resp.StatusCode, url))
	}
	return io.ReadAll(resp.Body)
}
