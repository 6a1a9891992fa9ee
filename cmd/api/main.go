package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/csaunders4z/market-voice-sub001/db"
	"github.com/csaunders4z/market-voice-sub001/internal/config"
	"github.com/csaunders4z/market-voice-sub001/internal/handler"
	"github.com/csaunders4z/market-voice-sub001/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
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

	scriptRepo := repository.NewScriptRepository(db.DB)
	reportRepo := repository.NewReportRepository(db.DB)
	scriptHandler := handler.NewScriptHandler(scriptRepo, reportRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/scripts", scriptHandler.GetScripts)
	r.GET("/scripts/latest", scriptHandler.GetLatestScript)
	r.GET("/scripts/:id", scriptHandler.GetScript)
	r.GET("/health", scriptHandler.GetHealth)

	err = r.Run(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
