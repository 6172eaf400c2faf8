package fleetbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// BlobStore is the cloud side of the backup feature: a dumb blob PUT/GET
// service. Backups go up as whole JSON documents and come back verbatim.
type BlobStore interface {
	// Upload stores data under name and returns the public URL of the blob.
	Upload(ctx context.Context, name string, data []byte) (string, error)
	// Download fetches a blob back by the URL Upload returned.
	Download(ctx context.Context, url string) ([]byte, error)
}

// BlobClient talks to a blob service over HTTP: PUT <base>/<name> with an
// access token header to upload, plain GET to download.
type BlobClient struct {
	Base   string
	Access string
	Client *http.Client
}

// NewBlobClient returns a client for the blob service at base.
func NewBlobClient(base, access string) *BlobClient {
	return &BlobClient{
		Base:   strings.TrimRight(base, "/"),
		Access: access,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *BlobClient) Upload(ctx context.Context, name string, data []byte) (string, error) {
	addr := c.Base + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, addr, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Access != "" {
		req.Header.Set("x-access", c.Access)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not upload %q: %w", name, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read upload response for %q: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("could not upload %q: %s: %s", name, resp.Status, strings.TrimSpace(string(body)))
	}
	// The service echoes the blob URL in its JSON response. Fall back to
	// the request URL when the response carries none.
	var jobj any
	if err := json.Unmarshal(body, &jobj); err == nil {
		if jval, err := jsonpath.Get("$.url", jobj); err == nil {
			if url, ok := jval.(string); ok && url != "" {
				return url, nil
			}
		}
	}
	return addr, nil
}

func (c *BlobClient) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.Access != "" {
		req.Header.Set("x-access", c.Access)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not download %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not download %q: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// BackupName returns the blob name for a backup of a store taken at t,
// e.g. "backups/fines-2025-01-05T10-30-00Z.json".
func BackupName(key string, t time.Time) string {
	return "backups/" + ExportName(key, t)
}
