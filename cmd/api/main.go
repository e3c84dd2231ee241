package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flight-concierge/config"
	_ "flight-concierge/docs" // Swagger docs
	chatUC "flight-concierge/internal/chat/usecase"
	"flight-concierge/internal/flightquery"
	"flight-concierge/internal/httpserver"
	"flight-concierge/pkg/datemath"
	"flight-concierge/pkg/flightsearch"
	"flight-concierge/pkg/gemini"
	"flight-concierge/pkg/log"
	"flight-concierge/pkg/mongo"
	"flight-concierge/pkg/scope"
)

// @title       Flight Concierge API
// @description Conversational backend routing between a flight-search assistant and a personal assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Flight Concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB
	mongoClient, err := mongo.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer func() {
		if dErr := mongo.Disconnect(context.Background(), mongoClient); dErr != nil {
			logger.Warnf(ctx, "MongoDB disconnect: %v", dErr)
		}
	}()
	database := mongoClient.Database(cfg.Mongo.Database)

	// 4. Upstream clients
	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	searchClient, err := flightsearch.New(flightsearch.Config{
		APIKey:  cfg.FlightSearch.APIKey,
		BaseURL: cfg.FlightSearch.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize flight search client: ", err)
		return
	}

	// 5. Flight query extraction
	timezone := cfg.Chat.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	extractor := flightquery.New(dateMathParser)

	// 6. Auth
	jwtManager := scope.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Database:   database,
		JWTManager: jwtManager,

		Gemini:       geminiClient,
		FlightSearch: searchClient,
		Extractor:    extractor,
		Chat: chatUC.Config{
			TitleRefreshEvery: cfg.Chat.TitleRefreshEvery,
			ContextCacheSize:  cfg.Chat.ContextCacheSize,
		},

		CORSOrigins: cfg.CORS.AllowedOrigins,
		RateRPS:     cfg.RateLimit.RPS,
		RateBurst:   cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
