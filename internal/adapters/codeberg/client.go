package codeberg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

const (
	DefaultBaseURL   = "https://codeberg.org"
	DefaultUserAgent = "codeberg-activity-graph/1.0"
	DefaultTimeout   = 10 * time.Second

	maxErrorBody = 512
)

var _ domain.HeatmapSource = (*Client)(nil)

// Client talks to the heatmap endpoint of a Gitea-compatible forge.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
	}
}

func (c *Client) heatmapURL(username string) string {
	return fmt.Sprintf("%s/api/v1/users/%s/heatmap", c.baseURL, url.PathEscape(username))
}

func (c *Client) FetchHeatmap(ctx context.Context, username string) ([]domain.ActivityRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.heatmapURL(username), nil)
	if err != nil {
		return nil, &domain.NetworkError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("codeberg: %s: %w", username, domain.ErrUserNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode}
	}

	var records []domain.ActivityRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &domain.NetworkError{Err: fmt.Errorf("decode heatmap: %w", err)}
	}
	if records == nil {
		records = []domain.ActivityRecord{}
	}

	return records, nil
}
