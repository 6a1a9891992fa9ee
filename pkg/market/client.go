package market

import "time"

// Mover is one of the day's notable gainers or losers.
type Mover struct {
	Symbol    string
	Company   string
	Price     float64
	ChangePct float64
	Volume    int64
	Source    string
}

// Article is a news item about a mover symbol.
type Article struct {
	ExternalID  string
	Symbol      string
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
}

// MoverClient fetches the day's top winners and losers from one data
// provider. Providers are tried in order; the first that answers wins.
type MoverClient interface {
	TopMovers(limit int) (winners []Mover, losers []Mover, err error)
	Name() string
}

// NewsClient fetches recent company news for a symbol.
type NewsClient interface {
	CompanyNews(symbol string, from, to time.Time) ([]Article, error)
	Name() string
}
