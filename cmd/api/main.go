package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"portfolio-web/internal/api"
	"portfolio-web/internal/clock"
	"portfolio-web/internal/config"
	"portfolio-web/internal/email"
	apihttp "portfolio-web/internal/http"
	"portfolio-web/internal/repository"
	"portfolio-web/internal/service"
	"portfolio-web/internal/theme"

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

	logger := newLogger(cfg)
	defer logger.Sync()

	themeRepo, closeRepo, err := repository.OpenThemeRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("theme store", zap.Error(err))
	}
	defer closeRepo()

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.OwnerEmail, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	apiClient := api.NewClient(cfg.APIBaseURL, nil, logger)
	registry := theme.NewRegistry(themeRepo, logger)
	display := clock.NewDisplay(clock.Real(), cfg.ClockInterval, cfg.ClockFormat,
		clock.WithLocator(clock.NewHTTPLocator(cfg.GeocodeURL, nil)),
		clock.WithLogger(logger),
	)

	pageSvc := service.NewPageService(logger, apiClient)
	contactSvc := service.NewContactService(logger, apiClient, emailSender)

	pageHandler := apihttp.NewPageHandler(logger, pageSvc, registry)
	contactHandler := apihttp.NewContactHandler(logger, pageSvc, contactSvc, registry, cfg.NoticeDismissAfter)
	themeHandler := apihttp.NewThemeHandler(logger, registry)
	clockHandler := apihttp.NewClockHandler(logger, display)
	router := apihttp.NewRouter(logger, cfg.SessionCookie, pageHandler, contactHandler, themeHandler, clockHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("api_base_url", apiClient.BaseURL()),
		zap.String("theme_store", cfg.ThemeStore),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsDevelopment() {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
