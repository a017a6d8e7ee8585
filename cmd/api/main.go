package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"talent-scout/internal/app"
	"talent-scout/internal/config"
	apihttp "talent-scout/internal/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	deps := app.Build(ctx, cfg, logger)
	defer deps.Close()

	intakeHandler := apihttp.NewIntakeHandler(logger, deps.Intake, cfg.LLMEnabled())
	router := apihttp.NewRouter(logger, intakeHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Bool("llm_enabled", cfg.LLMEnabled()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
