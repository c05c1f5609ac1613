package careers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// ONetBaseURL is the O*NET web services endpoint
	ONetBaseURL = "https://services.onetcenter.org"
	// ONetTimeout bounds every O*NET call
	ONetTimeout = 10 * time.Second

	// SalaryPlaceholder is substituted when an item has no salary figure
	SalaryPlaceholder = "See BLS Occupational Employment Statistics"
	// GrowthPlaceholder is substituted when an item has no growth figure
	GrowthPlaceholder = "See BLS Employment Projections"
)

// onetItem is one career entry from the O*NET search payload. The
// service is inconsistent about field names across endpoints, so both
// variants are decoded.
type onetItem struct {
	Title       string `json:"title"`
	Career      string `json:"career"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// ONetClient queries the O*NET My Next Move careers search. The API
// key is sent as the HTTP basic-auth username.
type ONetClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewONetClient creates an O*NET client for the given API key
func NewONetClient(apiKey string) *ONetClient {
	return &ONetClient{
		BaseURL: ONetBaseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: ONetTimeout,
		},
	}
}

// SearchCareers runs a keyword search built from the course name and
// returns up to ten normalized items. Items missing a salary or growth
// figure get a placeholder pointing at the BLS source.
func (c *ONetClient) SearchCareers(ctx context.Context, courseName string) ([]ExternalCareer, error) {
	keywords := strings.Fields(normalizeName(courseName))
	params := url.Values{}
	params.Set("q", strings.Join(keywords, " "))
	params.Set("start", "1")
	params.Set("end", "10")

	reqURL := c.BaseURL + "/ws/mnm/careers/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.APIKey, "")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("onet returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read onet response: %w", err)
	}

	items, err := decodeONetItems(body)
	if err != nil {
		return nil, err
	}

	results := make([]ExternalCareer, 0, len(items))
	for i, item := range items {
		if i >= 10 {
			break
		}

		name := item.Title
		if name == "" {
			name = item.Career
		}
		if name == "" {
			name = "Unknown Career"
		}

		description := item.Summary
		if description == "" {
			description = item.Description
		}

		results = append(results, ExternalCareer{
			Name:        name,
			Description: description,
			AvgSalary:   SalaryPlaceholder,
			GrowthRate:  GrowthPlaceholder,
		})
	}
	return results, nil
}

// decodeONetItems accepts either a bare list or an object wrapping a
// "careers" list.
func decodeONetItems(body []byte) ([]onetItem, error) {
	var list []onetItem
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Careers []onetItem `json:"careers"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode onet response: %w", err)
	}
	return wrapped.Careers, nil
}
