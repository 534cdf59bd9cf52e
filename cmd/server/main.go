package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/thoughtcode-25/DIGI-FARM/internal/ai"
	"github.com/thoughtcode-25/DIGI-FARM/internal/config"
	"github.com/thoughtcode-25/DIGI-FARM/internal/database"
	"github.com/thoughtcode-25/DIGI-FARM/internal/handlers"
	"github.com/thoughtcode-25/DIGI-FARM/internal/metrics"
	"github.com/thoughtcode-25/DIGI-FARM/internal/middleware"
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/notify"
	"github.com/thoughtcode-25/DIGI-FARM/internal/repositories"
	"github.com/thoughtcode-25/DIGI-FARM/internal/seed"
	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting DIGI-FARM server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Validate production security settings
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
	}

	// Select storage backend
	var stores *store.Stores
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		db, err := database.Connect(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}
		stores = repositories.NewStores(db)
	default:
		stores = store.NewMemoryStore().Bundle()
	}
	logger.Info("Storage backend ready", "driver", cfg.StorageDriver)

	clock := clockwork.NewRealClock()

	// Ensure the admin account exists before seeding its farm
	admin, err := stores.Farmers.GetFarmerByUsername(cfg.AdminUsername)
	if err != nil {
		logger.Fatal("Failed to load admin account", err)
	}
	if admin == nil {
		admin = &models.Farmer{
			FarmerID: uuid.NewString(),
			Username: cfg.AdminUsername,
			FarmType: models.FarmTypeChickens,
		}
		if err := stores.Farmers.SaveFarmer(admin); err != nil {
			logger.Fatal("Failed to create admin account", err)
		}
	}

	// Seed reference tables and, outside production, a demo dataset
	withDemoData := cfg.AppEnv != "production"
	if err := seed.Apply(stores, admin.FarmerID, clock.Now(), withDemoData); err != nil {
		logger.Fatal("Failed to seed data", err)
	}

	// Advice provider chain: Gemini when configured, canned fallback always
	var providers []ai.Provider
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("Gemini provider unavailable", "error", err)
		} else {
			providers = append(providers, gemini)
		}
	}
	providers = append(providers, ai.NewCannedProvider())

	// Notifier channels
	var notifiers []notify.Notifier
	if cfg.TwilioAccountSID != "" {
		twilioNotifier, err := notify.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.DefaultCountryCode)
		if err != nil {
			logger.Warn("Twilio notifier unavailable", "error", err)
		} else {
			notifiers = append(notifiers, twilioNotifier)
		}
	}
	if cfg.TelegramBotToken != "" {
		telegramNotifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("Telegram notifier unavailable", "error", err)
		} else {
			notifiers = append(notifiers, telegramNotifier)
		}
	}
	logger.Info("Notifier channels configured", "count", len(notifiers))

	// Services
	locks := services.NewUserLocks()
	recordService := services.NewRecordService(stores.Records, clock, cfg.EggPrice, cfg.FeedCostPerKg)
	financeService := services.NewFinanceService(stores.Ledger, locks)
	taskService := services.NewTaskService(stores.Tasks, stores.Progress, clock, locks)
	leaderboardService := services.NewLeaderboardService(stores.Farms)
	referenceService := services.NewReferenceService(stores.Reference)
	chatService := services.NewChatService(stores.Chat, stores.Progress, clock, locks)
	adviceService := services.NewAdviceService(providers, cfg.ProviderTimeout())
	alertService := services.NewAlertService(notifiers, clock, cfg.TempMinC, cfg.TempMaxC, cfg.VetHotline)
	otpService := services.NewOTPService(notifiers, clock, cfg.OTPLength, cfg.OTPExpiry(), cfg.OTPMaxAttempts)
	authService := services.NewAuthService(stores.Farmers, cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	reportService := services.NewReportService(recordService, stores.Ledger, clock, cfg.EggPrice, cfg.FeedCostPerKg)

	metrics.Register()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.RateLimitPerIP, time.Minute)

	router := handlers.NewRouter(handlers.RouterConfig{
		JWTSecret:   cfg.JWTSecret,
		RateLimiter: rateLimiter,

		AuthHandler:        handlers.NewAuthHandler(authService),
		RecordHandler:      handlers.NewRecordHandler(recordService),
		FinanceHandler:     handlers.NewFinanceHandler(financeService),
		TaskHandler:        handlers.NewTaskHandler(taskService),
		LeaderboardHandler: handlers.NewLeaderboardHandler(leaderboardService),
		ReferenceHandler:   handlers.NewReferenceHandler(referenceService, authService),
		ChatHandler:        handlers.NewChatHandler(chatService),
		AdviceHandler:      handlers.NewAdviceHandler(adviceService, authService),
		AlertHandler:       handlers.NewAlertHandler(alertService, authService),
		OTPHandler:         handlers.NewOTPHandler(otpService),
		ReportHandler:      handlers.NewReportHandler(reportService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
