package main

import (
	"log"

	api "github.com/voknelis/XSched/cmd/api"
	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	authRepo "github.com/voknelis/XSched/internal/auth/repository"
	"github.com/voknelis/XSched/internal/auth/token"
	authUsecase "github.com/voknelis/XSched/internal/auth/usecase"
	calendardomain "github.com/voknelis/XSched/internal/calendar/domain"
	calendarRepo "github.com/voknelis/XSched/internal/calendar/repository"
	"github.com/voknelis/XSched/internal/calendar/scheduler"
	calendarUsecase "github.com/voknelis/XSched/internal/calendar/usecase"
	profiledomain "github.com/voknelis/XSched/internal/profile/domain"
	profileRepo "github.com/voknelis/XSched/internal/profile/repository"
	profileUsecase "github.com/voknelis/XSched/internal/profile/usecase"
	"github.com/voknelis/XSched/pkg/config"
	"github.com/voknelis/XSched/pkg/database"
	"github.com/voknelis/XSched/pkg/fcm"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshSession{},
		&authdomain.DeviceToken{},
		&profiledomain.UserProfile{},
		&calendardomain.CalendarEvent{},
	); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	sessionRepo := authRepo.NewSessionRepository(db)
	deviceRepo := authRepo.NewDeviceTokenRepository(db)
	profileRepository := profileRepo.NewGormProfileRepository(db)
	eventRepository := calendarRepo.NewGormEventRepository(db)

	tokenManager := token.NewManager(token.Config{
		Secret:          cfg.JWTSecret,
		Issuer:          cfg.JWTIssuer,
		Audience:        cfg.JWTAudience,
		AccessTokenTTL:  cfg.JWTAccessTokenTTL,
		RefreshTokenTTL: cfg.JWTRefreshTokenTTL,
	})

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, sessionRepo, tokenManager)
	profileUsecaseInstance := profileUsecase.NewProfileUsecase(profileRepository)
	eventUsecaseInstance := calendarUsecase.NewEventUsecase(eventRepository, profileUsecaseInstance)

	// Initialize FCM client (optional, reminders work without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			logger.Warn("failed to initialize FCM client, push reminders disabled", zap.Error(err))
			fcmClient = nil
		}
	} else {
		logger.Info("no Firebase credentials configured, push reminders disabled")
	}

	// Start event reminder scheduler
	reminderScheduler := scheduler.NewReminderScheduler(eventRepository, deviceRepo, fcmClient, logger)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		userRepo,
		deviceRepo,
		profileUsecaseInstance,
		eventUsecaseInstance,
		cfg,
		logger,
	)

	// Start server
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
