// Package release looks up the latest published mod release on GitHub.
// The lookup is informational; callers treat a failure as a warning, never
// as a reason to block installation.
package release

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Release represents a GitHub release
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	PublishedAt string `json:"published_at"`
	Prerelease  bool   `json:"prerelease"`
}

// Client handles GitHub API requests for one repository
type Client struct {
	owner      string
	repo       string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new GitHub API client
func NewClient(owner, repo string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}
	return &Client{
		owner:      owner,
		repo:       repo,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
}

// SetBaseURL overrides the API endpoint (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// GetHTTPClient returns the HTTP client (useful for testing)
func (c *Client) GetHTTPClient() *http.Client {
	return c.httpClient
}

// GetLatestRelease fetches the latest published release
func (c *Client) GetLatestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch latest release: HTTP %d", resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("failed to parse release: %w", err)
	}

	return &rel, nil
}

// GetLatestTag fetches the tag name of the latest release
func (c *Client) GetLatestTag() (string, error) {
	rel, err := c.GetLatestRelease()
	if err != nil {
		return "", err
	}
	if rel.TagName == "" {
		return "", fmt.Errorf("latest release has no tag")
	}
	return rel.TagName, nil
}
