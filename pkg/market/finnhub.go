package market

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client  *finnhub.DefaultApiService
	symbols []string
}

func NewFinnHubClient(apiKey string, symbols []string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi

	if len(symbols) == 0 {
		symbols = FallbackSymbols
	}
	return &FinnHubClient{client: client, symbols: symbols}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// TopMovers quotes the configured symbol universe and picks the strongest
// gainers and losers by percent change. Individual quote failures are
// skipped; the call fails only when no symbol produced a quote.
func (c *FinnHubClient) TopMovers(limit int) ([]Mover, []Mover, error) {
	var movers []Mover
	var lastErr error

	for _, symbol := range c.symbols {
		res, _, err := c.client.Quote(context.Background()).Symbol(symbol).Execute()
		if err != nil {
			lastErr = err
			continue
		}

		m := Mover{Symbol: symbol, Source: c.Name()}
		if res.C != nil {
			m.Price = float64(*res.C)
		}
		if res.Dp != nil {
			m.ChangePct = float64(*res.Dp)
		}

		movers = append(movers, m)
	}

	if len(movers) == 0 {
		return nil, nil, fmt.Errorf("finnhub quotes: no symbols answered: %w", lastErr)
	}

	sort.Slice(movers, func(i, j int) bool {
		return movers[i].ChangePct > movers[j].ChangePct
	})

	var winners, losers []Mover
	for _, m := range movers {
		if m.ChangePct > 0 && len(winners) < limit {
			winners = append(winners, m)
		}
	}
	for i := len(movers) - 1; i >= 0; i-- {
		if movers[i].ChangePct < 0 && len(losers) < limit {
			losers = append(losers, movers[i])
		}
	}

	return winners, losers, nil
}

// CompanyNews fetches recent news for one symbol.
func (c *FinnHubClient) CompanyNews(symbol string, from, to time.Time) ([]Article, error) {
	res, _, err := c.client.CompanyNews(context.Background()).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub company news: %w", err)
	}

	var articles []Article
	for _, news := range res {
		a := Article{
			Symbol: symbol,
			Source: c.Name(),
		}

		if news.Id != nil {
			a.ExternalID = strconv.FormatInt(*news.Id, 10)
		}
		if news.Headline != nil {
			a.Headline = *news.Headline
		}
		if news.Summary != nil {
			a.Detail = *news.Summary
		}
		if news.Url != nil {
			a.URL = *news.Url
		}
		if news.Datetime != nil {
			a.PublishedAt = time.Unix(*news.Datetime, 0)
		}
		if news.Source != nil {
			a.Publisher = *news.Source
		}

		articles = append(articles, a)
	}

	return articles, nil
}
