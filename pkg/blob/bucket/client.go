package bucket

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal REST client to the managed object-storage backend.
// Objects live under a single bucket and are addressed by name.
type Client struct {
	baseURL string
	key     string
	bucket  string
	httpDo  *http.Client
}

func New(baseURL, key, bucket string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		bucket:  bucket,
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Remove deletes one object by name. A 404 from the backend is treated as
// success: the object being gone is the desired end state.
func (c *Client) Remove(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// Ping checks that the bucket exists and the access key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/storage/v1/bucket/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage http %d", resp.StatusCode)
	}
	return nil
}
