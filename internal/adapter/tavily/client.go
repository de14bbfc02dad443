// Package tavily is a minimal client for the Tavily Extract API, used as
// the last-resort extraction strategy when local rendering fails.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.tavily.com"

// Client calls the Tavily /extract endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type extractRequest struct {
	APIKey       string   `json:"api_key"`
	URLs         []string `json:"urls"`
	ExtractDepth string   `json:"extract_depth"`
}

type extractResponse struct {
	Results []struct {
		URL        string `json:"url"`
		RawContent string `json:"raw_content"`
	} `json:"results"`
	FailedResults []struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	} `json:"failed_results"`
}

// ExtractContent retrieves the cleaned page content for a URL. The
// provider runs its own rendering and cleanup; the advanced depth asks for
// the fullest extraction it supports.
func (c *Client) ExtractContent(ctx context.Context, pageURL string) (string, error) {
	body, err := json.Marshal(extractRequest{
		APIKey:       c.APIKey,
		URLs:         []string{pageURL},
		ExtractDepth: "advanced",
	})
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(c.BaseURL, "/") + "/extract"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("tavily status: %d", resp.StatusCode)
	}

	var er extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return "", err
	}
	if len(er.Results) == 0 {
		if len(er.FailedResults) > 0 && er.FailedResults[0].Error != "" {
			return "", fmt.Errorf("tavily could not extract: %s", er.FailedResults[0].Error)
		}
		return "", fmt.Errorf("tavily returned no results")
	}
	return strings.TrimSpace(er.Results[0].RawContent), nil
}
