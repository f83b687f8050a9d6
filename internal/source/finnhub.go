package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"newsbrief/internal/domain"
)

// FinnhubProvider fetches general market news through the Finnhub SDK.
type FinnhubProvider struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubProvider(apiKey string) *FinnhubProvider {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubProvider{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (p *FinnhubProvider) Name() string { return "finnhub" }

// Fetch returns up to limit general market news items.
func (p *FinnhubProvider) Fetch(ctx context.Context, limit int) ([]domain.Article, error) {
	news, _, err := p.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}

	articles := make([]domain.Article, 0, limit)
	for _, item := range news {
		if len(articles) >= limit {
			break
		}
		article := domain.Article{Source: "finnhub"}
		if item.Id != nil {
			article.ID = "finnhub-" + strconv.FormatInt(*item.Id, 10)
		}
		if item.Headline != nil {
			article.Title = *item.Headline
		}
		if item.Url != nil {
			article.URL = *item.Url
		}
		if item.Summary != nil {
			article.Summary = *item.Summary
		}
		if item.Datetime != nil {
			article.PublishedAt = time.Unix(*item.Datetime, 0).UTC()
		}
		if item.Source != nil && *item.Source != "" {
			article.Source = *item.Source
		}
		if article.Title == "" || article.URL == "" {
			continue
		}
		articles = append(articles, article)
	}
	return articles, nil
}
