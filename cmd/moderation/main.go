package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	appFlagcfg "github.com/surpriz/hospitalidee-moderation/pkg/app/flagcfg"
	appModeration "github.com/surpriz/hospitalidee-moderation/pkg/app/moderation"
	appWordlist "github.com/surpriz/hospitalidee-moderation/pkg/app/wordlist"
	"github.com/surpriz/hospitalidee-moderation/pkg/config"
	handlers "github.com/surpriz/hospitalidee-moderation/pkg/handlers/http"
	infraCache "github.com/surpriz/hospitalidee-moderation/pkg/infra/cache"
	infraLogger "github.com/surpriz/hospitalidee-moderation/pkg/infra/logger"
	"github.com/surpriz/hospitalidee-moderation/pkg/infra/mistral"
	"github.com/surpriz/hospitalidee-moderation/pkg/infra/storage"
	"github.com/surpriz/hospitalidee-moderation/pkg/middleware"
	"github.com/surpriz/hospitalidee-moderation/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	// Shared state
	wordListStore := storage.NewWordListFileStore(cfg.Storage.WordListFile, logger)
	wordListService, err := appWordlist.NewService(wordListStore, logger)
	if err != nil {
		logger.Fatalf("failed to initialize word list: %v", err)
	}

	flagConfigStore := storage.NewFlagConfigFileStore(cfg.Storage.FlagConfigFile, logger)
	flagConfigService, err := appFlagcfg.NewService(flagConfigStore, logger)
	if err != nil {
		logger.Fatalf("failed to initialize flag config: %v", err)
	}

	vocabulary, err := appModeration.LoadVocabulary(cfg.Storage.VocabularyFile)
	if err != nil {
		logger.Fatalf("failed to load vocabulary: %v", err)
	}

	// Classifier
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	classificationCache := infraCache.NewClassificationCache(redisClient, cfg.Moderation.CacheTTL, logger)

	classifier := mistral.NewClient(mistral.Config{
		APIKey:  cfg.Mistral.APIKey,
		Model:   cfg.Mistral.Model,
		URL:     cfg.Mistral.URL,
		Timeout: cfg.Mistral.Timeout,
	}, nil, classificationCache, logger)

	moderationService := appModeration.NewService(
		classifier,
		vocabulary,
		wordListService.Dictionary(),
		flagConfigService,
		logger,
	)

	middlewareTransport := middleware.Transport{
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		ModerateHandler:            handlers.NewModerateHandler(logger, moderationService),
		AddForbiddenWordHandler:    handlers.NewAddForbiddenWordHandler(logger, wordListService),
		RemoveForbiddenWordHandler: handlers.NewRemoveForbiddenWordHandler(logger, wordListService),
		ListForbiddenWordsHandler:  handlers.NewListForbiddenWordsHandler(logger, wordListService),
		GetFlagConfigHandler:       handlers.NewGetFlagConfigHandler(logger, flagConfigService),
		UpdateFlagConfigHandler:    handlers.NewUpdateFlagConfigHandler(logger, flagConfigService),
		GetVersionHandler:          handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewModerationServer(server.ModerationServerDI{
		Config:              cfg,
		Logger:              logger,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(srv.Run)
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down moderation server")
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return srv.Shutdown()
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("server terminated")
	}
}
