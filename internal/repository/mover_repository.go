package repository

import (
	"database/sql"
	"time"

	"github.com/csaunders4z/market-voice-sub001/internal/model"
)

type MoverRepository struct {
	db *sql.DB
}

func NewMoverRepository(db *sql.DB) *MoverRepository {
	return &MoverRepository{db: db}
}

// SaveMovers replaces the stored movers for one trading day.
func (r *MoverRepository) SaveMovers(day time.Time, movers []model.MarketMover) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM market_mover WHERE trading_day = $1`, day)
	if err != nil {
		return err
	}

	for i := range movers {
		err = tx.QueryRow(`
			INSERT INTO market_mover(trading_day, symbol, company, price, change_pct, direction, source)
			VALUES($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, day, movers[i].Symbol, movers[i].Company, movers[i].Price, movers[i].ChangePct,
			movers[i].Direction, movers[i].Source).Scan(&movers[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *MoverRepository) GetMoversForDay(day time.Time) ([]model.MarketMover, error) {
	rows, err := r.db.Query(`
		SELECT id, trading_day, symbol, company, price, change_pct, direction, source, created_at
		FROM market_mover
		WHERE trading_day = $1
		ORDER BY change_pct DESC
	`, day)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movers []model.MarketMover
	for rows.Next() {
		var m model.MarketMover
		err := rows.Scan(&m.ID, &m.TradingDay, &m.Symbol, &m.Company, &m.Price, &m.ChangePct,
			&m.Direction, &m.Source, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		movers = append(movers, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movers, nil
}

// SaveArticle stores one news item, skipping duplicates by URL. Returns false
// when the article already existed.
func (r *MoverRepository) SaveArticle(article *model.MarketArticle) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO market_article(symbol, headline, detail, url, source, publisher, published_at, external_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Symbol, article.Headline, article.Detail, article.URL, article.Source,
		article.Publisher, article.PublishedAt, article.ExternalID).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

// GetArticlesForSymbol returns the most recent stored news for a symbol.
func (r *MoverRepository) GetArticlesForSymbol(symbol string, limit int) ([]model.MarketArticle, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, headline, detail, url, source, publisher, published_at, external_id, fetched_at
		FROM market_article
		WHERE symbol = $1
		ORDER BY published_at DESC
		LIMIT $2
	`, symbol, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.MarketArticle
	for rows.Next() {
		var a model.MarketArticle
		err := rows.Scan(&a.ID, &a.Symbol, &a.Headline, &a.Detail, &a.URL, &a.Source,
			&a.Publisher, &a.PublishedAt, &a.ExternalID, &a.FetchedAt)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
