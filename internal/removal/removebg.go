package removal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the remove.bg background removal endpoint.
const DefaultBaseURL = "https://api.remove.bg/v1.0/removebg"

// Client removes backgrounds through the remove.bg HTTP API.
//
// Construct with NewClient. BaseURL and HTTPClient may be overridden after
// construction; tests point BaseURL at a local server.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for the production remove.bg endpoint using
// the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// RemoveBackground uploads the file at path as a multipart form with the
// image under "image_file" and size=auto, authenticated with the X-Api-Key
// header. On a 200 response the body replaces the input file. Any other
// status becomes an error carrying the status code and the response text,
// and the input file is left untouched.
func (c *Client) RemoveBackground(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image_file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := mw.WriteField("size", "auto"); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("remove.bg request failed: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read remove.bg response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remove.bg returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(out)))
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to overwrite %s: %w", path, err)
	}
	return nil
}
