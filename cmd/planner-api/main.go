// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gavinpai/trip-planner-ai/internal/ai"
	"github.com/gavinpai/trip-planner-ai/internal/attractions"
	"github.com/gavinpai/trip-planner-ai/internal/config"
	httptransport "github.com/gavinpai/trip-planner-ai/internal/http"
	"github.com/gavinpai/trip-planner-ai/internal/infra"
	"github.com/gavinpai/trip-planner-ai/internal/modules/usage"
	"github.com/gavinpai/trip-planner-ai/internal/planner"
	"github.com/gavinpai/trip-planner-ai/internal/weather"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model, cfg.AI.MaxTokens)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer provider.Close()

	weatherSvc := weather.NewService(cfg.Weather.APIKey, cfg.Weather.BaseURL, logger)
	if weatherSvc == nil {
		logger.Info("WEATHER_API_KEY not set; weather enrichment disabled")
	}

	attractionsSvc, err := attractions.NewService(cfg.Maps.APIKey, logger)
	if err != nil {
		logger.Fatal("maps init", zap.Error(err))
	}
	if attractionsSvc == nil {
		logger.Info("MAPS_API_KEY not set; attraction enrichment disabled")
	}

	usageSvc := usage.NewService(usage.NewStore(dbPool))
	plannerSvc := planner.New(provider, weatherSvc, attractionsSvc, logger)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:    plannerSvc,
		Usage:      usageSvc,
		Redis:      redisClient,
		RatePerMin: cfg.Redis.RatePerMin,
		Log:        logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
