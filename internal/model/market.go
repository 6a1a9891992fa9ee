package model

import "time"

const (
	DirectionWinner = "winner"
	DirectionLoser  = "loser"
)

// MarketMover is one of the day's notable gainers or losers as persisted.
type MarketMover struct {
	ID         int64
	TradingDay time.Time
	Symbol     string
	Company    string
	Price      float64
	ChangePct  float64
	Direction  string
	Source     string
	CreatedAt  time.Time
}

// MarketArticle is a news item tied to a mover symbol.
type MarketArticle struct {
	ID          int64
	Symbol      string
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
	ExternalID  string
	FetchedAt   time.Time
}
