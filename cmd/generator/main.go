package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/csaunders4z/market-voice-sub001/db"
	"github.com/csaunders4z/market-voice-sub001/internal/config"
	"github.com/csaunders4z/market-voice-sub001/internal/pipeline"
	"github.com/csaunders4z/market-voice-sub001/internal/repository"
	"github.com/csaunders4z/market-voice-sub001/pkg/llm"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	scriptClient := newScriptClient(cfg)

	scriptRepo := repository.NewScriptRepository(db.DB)
	moverRepo := repository.NewMoverRepository(db.DB)
	pipe := pipeline.New(cfg, nil, nil, scriptClient, scriptRepo, nil, moverRepo)

	for {
		data, err := db.PopFromQueue(db.GenerateQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		day, err := time.Parse("2006-01-02", data)
		if err != nil {
			slog.Error("invalid air date in queue", "data", data, "error", err)
			continue
		}

		script, err := pipe.Generate(day)
		if err != nil {
			slog.Error("error generating script", "day", data, "error", err)

			db.PushToQueue(db.DeadLetterKey, data)

			time.Sleep(5 * time.Second)
			continue
		}

		err = db.PushToQueue(db.ValidateQueueKey, strconv.FormatInt(script.ID, 10))
		if err != nil {
			slog.Error("error pushing to Redis queue", "script_id", script.ID, "error", err)
			continue
		}

		slog.Info("script queued for validation", "script_id", script.ID, "day", data)
	}
}

func newScriptClient(cfg *config.Config) llm.ScriptClient {
	prompt := llm.LoadFoundationalPrompt(cfg.LLM.FoundationalPrompt)

	switch cfg.LLM.Provider {
	case "anthropic":
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), prompt)
	default:
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), prompt)
	}
}
