package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"newsbrief/internal/domain"
)

const (
	fmpDefaultBaseURL = "https://financialmodelingprep.com"
	fmpSummaryLimit   = 500
)

// FMPProvider fetches stock news from Financial Modeling Prep.
type FMPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewFMPProvider(baseURL, apiKey string, client *http.Client) *FMPProvider {
	if baseURL == "" {
		baseURL = fmpDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &FMPProvider{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (p *FMPProvider) Name() string { return "fmp" }

type fmpItem struct {
	Title         string `json:"title"`
	Text          string `json:"text"`
	URL           string `json:"url"`
	Site          string `json:"site"`
	PublishedDate string `json:"publishedDate"`
}

// Fetch requests the latest stock news. FMP has no stable article ID, so
// the URL doubles as one.
func (p *FMPProvider) Fetch(ctx context.Context, limit int) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("apikey", p.apiKey)
	params.Set("limit", strconv.Itoa(limit))

	endpoint := p.baseURL + "/api/v3/stock_news?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build fmp request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fmp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fmp returned status %d", resp.StatusCode)
	}

	var items []fmpItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode fmp response: %w", err)
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.URL == "" {
			continue
		}
		summary := item.Text
		if len(summary) > fmpSummaryLimit {
			summary = summary[:fmpSummaryLimit]
		}
		articles = append(articles, domain.Article{
			ID:          item.URL,
			Title:       item.Title,
			URL:         item.URL,
			Summary:     summary,
			PublishedAt: parseTime(item.PublishedDate),
			Source:      item.Site,
		})
	}
	return articles, nil
}
