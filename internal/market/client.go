// Package market supplies labor-market snapshots per career title, backed by a
// persistent file cache and an external job-search API.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// DefaultTimeout bounds the single outbound search request.
	DefaultTimeout = 10 * time.Second
	// DefaultCountry selects the Adzuna country endpoint.
	DefaultCountry = "in"
	// resultsPerPage is the page size requested from the search API. The
	// reported total count may exceed it.
	resultsPerPage = 100
	// maxExpectedJobs is the job count at which the market score saturates.
	maxExpectedJobs = 50000

	defaultBaseURL = "https://api.adzuna.com/v1/api/jobs"
)

// ClientConfig holds credentials and tunables for the search client.
type ClientConfig struct {
	AppID   string
	AppKey  string
	Country string
	Timeout time.Duration
	BaseURL string // overridable for tests
}

// Client queries the Adzuna job-search API for one page of results per title.
type Client struct {
	config ClientConfig
	http   *http.Client
}

// NewClient creates a search client. Zero-value config fields fall back to
// defaults; credentials are validated per call, not at construction.
func NewClient(config ClientConfig) *Client {
	if config.Country == "" {
		config.Country = DefaultCountry
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

type searchJob struct {
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`
}

type searchResponse struct {
	Count   int         `json:"count"`
	Results []searchJob `json:"results"`
}

// Search issues one search request for the title and computes a snapshot from
// the response. It returns ErrMissingCredentials, an *UnreachableError, or a
// *MalformedError on failure; callers decide how to degrade.
func (c *Client) Search(ctx context.Context, title string) (types.MarketSnapshot, error) {
	if c.config.AppID == "" || c.config.AppKey == "" {
		return types.MarketSnapshot{}, ErrMissingCredentials
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", c.config.BaseURL, c.config.Country)
	params := url.Values{}
	params.Set("app_id", c.config.AppID)
	params.Set("app_key", c.config.AppKey)
	params.Set("results_per_page", fmt.Sprintf("%d", resultsPerPage))
	params.Set("what", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return types.MarketSnapshot{}, &UnreachableError{Title: title, Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return types.MarketSnapshot{}, &UnreachableError{Title: title, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.MarketSnapshot{}, &UnreachableError{
			Title: title,
			Cause: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.MarketSnapshot{}, &MalformedError{Title: title, Message: "invalid JSON", Cause: err}
	}
	if body.Count < 0 {
		return types.MarketSnapshot{}, &MalformedError{Title: title, Message: "negative result count"}
	}

	// Jobs missing either salary bound are excluded from the average, not
	// treated as zero.
	var salarySum float64
	salaryCount := 0
	for _, job := range body.Results {
		if job.SalaryMin > 0 && job.SalaryMax > 0 {
			salarySum += (job.SalaryMin + job.SalaryMax) / 2
			salaryCount++
		}
	}
	avgSalary := 0.0
	if salaryCount > 0 {
		avgSalary = round2(salarySum / float64(salaryCount))
	}

	return types.MarketSnapshot{
		JobCount:      body.Count,
		AverageSalary: avgSalary,
		MarketScore:   NormalizeMarketScore(body.Count),
		FetchedAt:     time.Now().UTC(),
	}, nil
}

// NormalizeMarketScore maps a job count onto [0,100] with linear saturation at
// maxExpectedJobs, rounded to 2 decimals.
func NormalizeMarketScore(jobCount int) float64 {
	score := math.Min(float64(jobCount)/maxExpectedJobs, 1)
	return round2(score * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
