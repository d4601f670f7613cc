// Package catalog implements the client for the external creature catalog
// API. The server consults it the first time a creature name is referenced,
// before adding the name to the local shared catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/critterkeep/internal/common"
)

const (
	lookupMaxRetries = 3
	lookupRetryBase  = 200 * time.Millisecond
)

// Species is the subset of the catalog's response the server keeps.
type Species struct {
	Name           string `json:"name"`
	BaseExperience int    `json:"base_experience"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a catalog client for baseURL (e.g. a PokeAPI-style
// ".../pokemon" collection endpoint). timeout bounds each HTTP attempt.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lookup fetches the catalog entry for name. An unknown name yields
// common.ErrCreatureNotFound; transport failures and 5xx responses are
// retried with exponential backoff and, once exhausted, yield
// common.ErrCatalogUnavailable. The two outcomes stay distinct so callers
// can answer "no such creature" and "try again later" differently.
func (c *Client) Lookup(ctx context.Context, name string) (*Species, error) {

	endpoint := c.baseURL + "/" + url.PathEscape(name)

	var species Species
	backoff := retry.WithMaxRetries(lookupMaxRetries, retry.NewExponential(lookupRetryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return common.ErrCreatureNotFound
		case resp.StatusCode >= http.StatusInternalServerError:
			return retry.RetryableError(fmt.Errorf("catalog responded %d", resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("catalog responded %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(&species); err != nil {
			return fmt.Errorf("decoding catalog response: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrCreatureNotFound) {
			return nil, common.ErrCreatureNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrCatalogUnavailable, err)
	}

	return &species, nil
}
