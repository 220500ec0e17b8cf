// internal/adapters/travel/client.go
package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/domain"
)

// maxBody caps how much of the dataset response is read.
const maxBody = 4 << 20

var (
	ErrBadStatus = errors.New("travel: bad status")
	ErrDecode    = errors.New("travel: decode dataset")
)

type Client struct {
	url string
	hc  *http.Client
	rl  *rate.Limiter
}

func New(url string, rps int) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("dataset URL is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("dataset URL must be http or https, got %q", url)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		url: url,
		hc:  &http.Client{},
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// LoadDataset performs one GET of the dataset. There is no retry; callers
// decide what a failure means.
func (c *Client) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := c.get(ctx, &ds); err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}

func (c *Client) get(ctx context.Context, out any) error {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travel-reco/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("dataset", "get", 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("dataset", "get", resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("dataset %s: %w", c.url, domain.ErrNotFound)

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w %d: %s", ErrBadStatus, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
