package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pokexplorer/internal/model"
)

// Client is the remote catalog client. Both operations are read-only and
// idempotent; the client performs no retries of its own. Every failure mode
// (non-2xx status, undecodable body, transport error) is folded into a single
// error value whose message is the user-facing diagnostic.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchCategory fetches a category by id: its name plus the ordered member
// list. Unknown ids surface as an error carrying the response status.
func (c *Client) FetchCategory(ctx context.Context, id int) (*model.CategoryPage, error) {
	var page model.CategoryPage
	if err := c.getJSON(ctx, fmt.Sprintf("%s/type/%d", c.baseURL, id), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchItem fetches a full item record from a member-reference URL. The URL
// comes from a category response and is passed through verbatim.
func (c *Client) FetchItem(ctx context.Context, url string) (*model.Item, error) {
	var item model.Item
	if err := c.getJSON(ctx, url, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("response code: %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("response code: %d (undecodable body: %v)", resp.StatusCode, err)
	}
	return nil
}
