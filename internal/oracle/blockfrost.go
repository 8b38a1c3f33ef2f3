// Package oracle queries the Blockfrost API for on-chain stake-address
// activity.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	mainnetURL = "https://cardano-mainnet.blockfrost.io/api/v0"
	testnetURL = "https://cardano-preprod.blockfrost.io/api/v0"

	requestTimeout = 10 * time.Second
)

// ErrUnusable signals that the oracle cannot serve this run: bad or
// expired credential, or a transport failure. The verifier reacts by
// disabling the oracle backend, never by retrying.
var ErrUnusable = errors.New("oracle unusable")

// Client is a Blockfrost API client for one project credential.
type Client struct {
	baseURL   string
	projectID string
	client    *http.Client
}

// New builds a client and probes the API root so that an invalid
// credential is signaled immediately, before any address query.
func New(projectID string, testnet bool) (*Client, error) {
	baseURL := mainnetURL
	if testnet {
		baseURL = testnetURL
	}
	return newClient(projectID, baseURL)
}

func newClient(projectID, baseURL string) (*Client, error) {
	c := &Client{
		baseURL:   baseURL,
		projectID: projectID,
		client:    &http.Client{Timeout: requestTimeout},
	}

	resp, err := c.get(context.Background(), c.baseURL+"/")
	if err != nil {
		return nil, fmt.Errorf("%w: probing API root: %v", ErrUnusable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: credential rejected: %s", ErrUnusable, resp.Status)
	}
	return c, nil
}

// Active reports whether the stake address has on-chain activity. A
// 404 means the address never appeared on chain and is a clean
// negative; every other failure wraps ErrUnusable.
func (c *Client) Active(ctx context.Context, stakeAddress string) (bool, error) {
	resp, err := c.get(ctx, c.baseURL+"/accounts/"+stakeAddress)
	if err != nil {
		return false, fmt.Errorf("%w: querying account: %v", ErrUnusable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var account struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
			return false, fmt.Errorf("%w: decoding account: %v", ErrUnusable, err)
		}
		return account.Active, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected status: %s", ErrUnusable, resp.Status)
	}
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("project_id", c.projectID)
	return c.client.Do(req)
}
