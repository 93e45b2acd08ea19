package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"wiring-inspector/config"
	telegram "wiring-inspector/internal/api"
	"wiring-inspector/internal/container"
	"wiring-inspector/internal/infrastructure/describer"
	"wiring-inspector/internal/infrastructure/segmentation"
	"wiring-inspector/internal/infrastructure/storage"
	"wiring-inspector/internal/infrastructure/vision"
	"wiring-inspector/internal/logger"
	"wiring-inspector/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	segmenter := segmentation.NewHTTPSegmenter(cfg.SegmenterURL, cfg.ImageSize, cfg.SegmenterConfidence, cfg.SegmenterTimeout)
	appContainer := container.New(
		storage.NewMemoryUserRepository(),
		segmenter,
		vision.NewGoCVProcessor(),
		describer.NewTextDescriber(),
		cfg.ImageSize,
	)

	var wg sync.WaitGroup

	if cfg.HTTPAddr != "" {
		server := &http.Server{
			Addr: cfg.HTTPAddr,
			Handler: transport.NewHandler(appContainer.InspectionService, transport.Options{
				MaxBodyBytes:   cfg.MaxUploadBytes,
				RequestTimeout: cfg.SegmenterTimeout + 5*time.Second,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.WithField("address", cfg.HTTPAddr).Info("Starting HTTP server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("HTTP server failed")
				stop()
			}
		}()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Warn("HTTP server forced to shutdown")
			}
		}()
	}

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create bot")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("Bot is running...")
			if err := bot.Run(ctx); err != nil {
				logger.WithError(err).Error("Bot stopped")
			}
		}()
	}

	logger.WithFields(logrus.Fields{
		"segmenter":  cfg.SegmenterURL,
		"image_size": cfg.ImageSize,
		"http":       cfg.HTTPAddr != "",
		"telegram":   cfg.TelegramToken != "",
	}).Info("Wiring inspector started")

	wg.Wait()
	logger.Info("Wiring inspector stopped")
}
