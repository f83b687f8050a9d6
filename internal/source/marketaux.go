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

const marketauxDefaultBaseURL = "https://api.marketaux.com/v1"

// MarketAuxProvider fetches general finance news from the MarketAux API.
type MarketAuxProvider struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewMarketAuxProvider builds a provider; baseURL may be empty to use the
// public endpoint.
func NewMarketAuxProvider(baseURL, apiToken string, client *http.Client) *MarketAuxProvider {
	if baseURL == "" {
		baseURL = marketauxDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &MarketAuxProvider{baseURL: baseURL, apiToken: apiToken, client: client}
}

func (p *MarketAuxProvider) Name() string { return "marketaux" }

type marketauxResponse struct {
	Data []struct {
		UUID        string `json:"uuid"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Snippet     string `json:"snippet"`
		Source      string `json:"source"`
		PublishedAt string `json:"published_at"`
	} `json:"data"`
}

// Fetch requests the latest English-language articles with entity data.
func (p *MarketAuxProvider) Fetch(ctx context.Context, limit int) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("api_token", p.apiToken)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("filter_entities", "true")
	params.Set("language", "en")

	endpoint := p.baseURL + "/news/all?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build marketaux request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketaux request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("marketaux returned status %d", resp.StatusCode)
	}

	var payload marketauxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode marketaux response: %w", err)
	}

	articles := make([]domain.Article, 0, len(payload.Data))
	for _, item := range payload.Data {
		if item.Title == "" || item.URL == "" {
			continue
		}
		summary := item.Description
		if summary == "" {
			summary = item.Snippet
		}
		articles = append(articles, domain.Article{
			ID:          item.UUID,
			Title:       item.Title,
			URL:         item.URL,
			Summary:     summary,
			PublishedAt: parseTime(item.PublishedAt),
			Source:      item.Source,
		})
	}
	return articles, nil
}
