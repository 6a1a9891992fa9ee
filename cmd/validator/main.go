package main

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/csaunders4z/market-voice-sub001/db"
	"github.com/csaunders4z/market-voice-sub001/internal/config"
	"github.com/csaunders4z/market-voice-sub001/internal/model"
	"github.com/csaunders4z/market-voice-sub001/internal/pipeline"
	"github.com/csaunders4z/market-voice-sub001/internal/repository"
	"github.com/csaunders4z/market-voice-sub001/pkg/quality"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxRetries = 3

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

	scriptRepo := repository.NewScriptRepository(db.DB)
	reportRepo := repository.NewReportRepository(db.DB)
	pipe := pipeline.New(cfg, nil, nil, nil, scriptRepo, reportRepo, nil)

	for {
		data, err := db.PopFromQueue(db.ValidateQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		scriptID, err := strconv.ParseInt(data, 10, 64)
		if err != nil {
			slog.Error("invalid script id in queue", "data", data, "error", err)
			continue
		}

		errorCount, err := scriptRepo.GetErrorCount(scriptID)
		if err != nil {
			slog.Error("error getting error count", "script_id", scriptID, "error", err)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("script exceeded max retries, marking as failed", "script_id", scriptID, "error_count", errorCount)
			scriptRepo.UpdateStatus(scriptID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, data)
			continue
		}

		report, err := pipe.Validate(scriptID, nil)

		var parseErr *quality.ParseError
		if errors.As(err, &parseErr) {
			slog.Warn("script unparseable, marked as failed", "script_id", scriptID, "reason", parseErr.Reason)
			continue
		}
		if err != nil {
			slog.Error("error validating script", "script_id", scriptID, "error", err)

			scriptRepo.SaveError(scriptID, err.Error(), "validation_error")

			db.PushToQueue(db.ValidateQueueKey, data)

			time.Sleep(5 * time.Second)
			continue
		}

		slog.Info("script validated successfully",
			"script_id", scriptID,
			"score", report.Report.OverallScore,
			"pass", report.Report.Pass,
		)
	}
}
