package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/genfuture/careers-api/model"
)

const (
	// DefaultBaseURL is the public Hipolabs university directory
	DefaultBaseURL = "http://universities.hipolabs.com"
	// DefaultTimeout bounds every directory call
	DefaultTimeout = 10 * time.Second

	// UnknownName is substituted when an external record has no name
	UnknownName = "Unknown University"
)

// RawUniversity is the directory's wire shape for a single institution
type RawUniversity struct {
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	StateProvince string   `json:"state-province"`
	WebPages      []string `json:"web_pages"`
}

// Client fetches institution records from the external university
// directory. Results are normalized to the local University shape with
// ID 0 (unresolved) so the reconciler can assign real identities.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a directory client with the default endpoint and timeout
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Search queries the directory by optional name substring and country.
// Any transport, status, or decode failure is returned as an error; the
// caller decides on the local fallback.
func (c *Client) Search(ctx context.Context, name, country string) ([]model.University, error) {
	params := url.Values{}
	if name != "" {
		params.Set("name", name)
	}
	if country != "" {
		params.Set("country", country)
	}

	reqURL := c.BaseURL + "/search"
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var raw []RawUniversity
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	normalized := make([]model.University, 0, len(raw))
	for _, item := range raw {
		normalized = append(normalized, Normalize(item))
	}
	return normalized, nil
}

// Normalize maps a raw directory item to the University shape: ID 0
// (unresolved), coordinates defaulted to (0, 0), city taken from the
// state-province field, website from the first listed web page.
func Normalize(item RawUniversity) model.University {
	name := item.Name
	if name == "" {
		name = UnknownName
	}

	website := ""
	if len(item.WebPages) > 0 {
		website = item.WebPages[0]
	}

	zero := 0.0
	lat, lon := zero, zero

	return model.University{
		ID:        0,
		Name:      name,
		Latitude:  &lat,
		Longitude: &lon,
		Country:   item.Country,
		City:      item.StateProvince,
		Website:   website,
	}
}
