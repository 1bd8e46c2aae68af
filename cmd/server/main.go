package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/medicare-camp/camp-api/internal/config"
	"github.com/medicare-camp/camp-api/internal/database"
	"github.com/medicare-camp/camp-api/internal/handlers"
	"github.com/medicare-camp/camp-api/internal/notifier"
	"github.com/medicare-camp/camp-api/internal/payments"
	"github.com/medicare-camp/camp-api/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access database handle", zap.Error(err))
	}

	// Optional Discord notifier
	var enrollmentNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			logger.Warn("discord notifier not initialized", zap.Error(err))
		} else {
			enrollmentNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Optional payment provider
	var paymentProvider payments.Provider
	if cfg.StripeSecretKey != "" {
		paymentProvider = payments.NewStripeProvider(cfg.StripeSecretKey)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, payment endpoint disabled")
	}

	// Initialize Handlers
	campHandler := handlers.NewCampHandler(store.NewCampStore(db), logger)
	registrationHandler := handlers.NewRegistrationHandler(store.NewRegistrationStore(db), enrollmentNotifier, logger)
	userHandler := handlers.NewUserHandler(store.NewUserStore(db), logger)
	paymentHandler := handlers.NewPaymentHandler(paymentProvider, logger)

	// Initialize Router
	r := chi.NewRouter()
	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}

	// Register Routes
	handlers.RegisterRoutes(r, campHandler, registrationHandler, userHandler, paymentHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("database close failed", zap.Error(err))
	}
}
