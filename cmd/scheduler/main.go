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
	"github.com/csaunders4z/market-voice-sub001/pkg/llm"
	"github.com/csaunders4z/market-voice-sub001/pkg/market"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// The scheduler runs the full daily chain in one process, as an alternative
// to deploying the collector, generator and validator workers separately.
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
		log.Fatalf("no market data API keys configured")
	}

	prompt := llm.LoadFoundationalPrompt(cfg.LLM.FoundationalPrompt)

	var scriptClient llm.ScriptClient
	switch cfg.LLM.Provider {
	case "anthropic":
		scriptClient = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), prompt)
	default:
		scriptClient = llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), prompt)
	}

	pipe := pipeline.New(
		cfg,
		moverClients,
		newsClient,
		scriptClient,
		repository.NewScriptRepository(db.DB),
		repository.NewReportRepository(db.DB),
		repository.NewMoverRepository(db.DB),
	)

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	_, err = c.AddFunc(cfg.Schedule, func() {
		if err := pipe.RunDaily(time.Now()); err != nil {
			slog.Error("daily run failed", "error", err)
		}
	})
	if err != nil {
		log.Fatalf("error registering schedule %q: %v", cfg.Schedule, err)
	}

	slog.Info("scheduler started", "schedule", cfg.Schedule)
	c.Run()
}
