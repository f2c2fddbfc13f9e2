package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"lumawisp/config"
	"lumawisp/handlers"
	"lumawisp/logging"
	"lumawisp/server"
	"lumawisp/store"
	"lumawisp/wisp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		logger.Warnw("GEMINI_API_KEY not set, every chat will use fallback responses")
		apiKey = "fallback-mode"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Fatalw("create generative client", "error", err)
	}
	defer client.Close()

	var st store.Store
	if cfg.DatabasePath != "" {
		s, err := store.NewSQLiteStore(cfg.DatabasePath)
		if err != nil {
			logger.Fatalw("open sqlite store", "path", cfg.DatabasePath, "error", err)
		}
		defer s.Close()
		st = s
		logger.Infow("using sqlite store", "path", cfg.DatabasePath)
	} else {
		st = store.NewMemStore()
		logger.Infow("using in-memory store")
	}

	engine := wisp.NewEngine(wisp.NewGeminiGenerator(client, cfg.Model), logger, cfg.GenTimeout)
	h := handlers.New(st, engine, logger, cfg.BaseURL, cfg.Env)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.RouterConfig{Handler: h, Log: logger})

	logger.Infow("listening", "addr", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
