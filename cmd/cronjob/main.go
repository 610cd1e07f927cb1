package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"clubcourt-backend/internal/config"
	"clubcourt-backend/internal/jobs"
	"clubcourt-backend/internal/logger"
	"clubcourt-backend/internal/repository/postgres"
	"clubcourt-backend/internal/service"
)

// Runs scheduled jobs once and exits. Useful for manual catch-up runs and
// one-shot execution from external schedulers.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	jobName := flag.String("job", "all", "Job to run: all, complete-bookings, booking-reminders")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	runner := jobs.NewJobRunner(store, emailSvc, cfg)

	switch *jobName {
	case "complete-bookings":
		runner.CompleteElapsedBookings()
	case "booking-reminders":
		runner.SendBookingReminders()
	case "all":
		runner.RunAllNightlyJobs()
	default:
		log.Fatalf("Unknown job: %s", *jobName)
	}
}
