package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "clubcourt-backend/internal/api/http"
	"clubcourt-backend/internal/config"
	"clubcourt-backend/internal/jobs"
	"clubcourt-backend/internal/logger"
	"clubcourt-backend/internal/repository/postgres"
	"clubcourt-backend/internal/scheduler"
	"clubcourt-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubCourt backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	walletSvc := service.NewWalletService(store.WalletRepository, store.MemberRepository, emailSvc, store.NotificationRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CourtRepository,
		store.MemberRepository,
		emailSvc,
		store.NotificationRepository,
		time.Duration(cfg.Booking.RefundWindowHours)*time.Hour,
		cfg.Booking.OpenHour,
		cfg.Booking.CloseHour,
	)
	tournSvc := service.NewTournamentService(store.TournamentRepository, store.MatchRepository, store.MemberRepository, store.NotificationRepository)
	courtSvc := service.NewCourtService(store.CourtRepository)
	memberSvc := service.NewMemberService(store.MemberRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	router := httpapi.NewRouter(httpapi.Services{
		Wallet:       walletSvc,
		Booking:      bookingSvc,
		Tournament:   tournSvc,
		Court:        courtSvc,
		Member:       memberSvc,
		Notification: noteSvc,
	})

	jobRunner := jobs.NewJobRunner(store, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
