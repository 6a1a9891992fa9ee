package market

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

// TopMovers uses the TOP_GAINERS_LOSERS endpoint, which already ranks the
// day's movers server-side.
func (c *AlphaVantageClient) TopMovers(limit int) ([]Mover, []Mover, error) {
	url := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=TOP_GAINERS_LOSERS&apikey=%s",
		c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, nil, fmt.Errorf("alphavantage movers: %w", err)
	}
	defer resp.Body.Close()

	var raw avMoversResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	winners := c.convert(raw.TopGainers, limit)
	losers := c.convert(raw.TopLosers, limit)

	if len(winners) == 0 && len(losers) == 0 {
		return nil, nil, fmt.Errorf("alphavantage movers: empty response")
	}

	return winners, losers, nil
}

func (c *AlphaVantageClient) convert(raw []avMover, limit int) []Mover {
	movers := make([]Mover, 0, limit)
	for _, item := range raw {
		if len(movers) == limit {
			break
		}

		m := Mover{Symbol: item.Ticker, Source: c.Name()}
		if v, err := strconv.ParseFloat(item.Price, 64); err == nil {
			m.Price = v
		}
		if v, err := strconv.ParseFloat(strings.TrimSuffix(item.ChangePercentage, "%"), 64); err == nil {
			m.ChangePct = v
		}
		if v, err := strconv.ParseInt(item.Volume, 10, 64); err == nil {
			m.Volume = v
		}

		movers = append(movers, m)
	}
	return movers
}

type avMoversResponse struct {
	TopGainers []avMover `json:"top_gainers"`
	TopLosers  []avMover `json:"top_losers"`
}

type avMover struct {
	Ticker           string `json:"ticker"`
	Price            string `json:"price"`
	ChangeAmount     string `json:"change_amount"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
}
