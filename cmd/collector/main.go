package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/csaunders4z/market-voice-sub001/db"
	"github.com/csaunders4z/market-voice-sub001/internal/config"
	"github.com/csaunders4z/market-voice-sub001/internal/pipeline"
	"github.com/csaunders4z/market-voice-sub001/internal/repository"
	"github.com/csaunders4z/market-voice-sub001/pkg/market"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var moverClients []market.MoverClient
	var newsClient market.NewsClient

	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		finnhub := market.NewFinnHubClient(key, cfg.Market.Symbols)
		moverClients = append(moverClients, finnhub)
		newsClient = finnhub
	}
	if key := os.Getenv("ALPHA_VANTAGE_API_KEY"); key != "" {
		moverClients = append(moverClients, market.NewAlphaVantageClient(key))
	}

	if len(moverClients) == 0 {
		slog.Error("no market data API keys configured")
		return
	}

	moverRepo := repository.NewMoverRepository(db.DB)
	pipe := pipeline.New(cfg, moverClients, newsClient, nil, nil, nil, moverRepo)

	day := pipeline.TradingDay(time.Now())

	err = pipe.Collect(day)
	if err != nil {
		slog.Error("error collecting movers", "day", day.Format("2006-01-02"), "error", err)
		return
	}

	err = db.PushToQueue(db.GenerateQueueKey, day.Format("2006-01-02"))
	if err != nil {
		slog.Error("error pushing to Redis queue", "day", day.Format("2006-01-02"), "error", err)
		return
	}

	slog.Info("collect complete", "day", day.Format("2006-01-02"))
}
