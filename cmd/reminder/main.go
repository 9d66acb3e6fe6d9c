package main

import (
	"context"
	"dentsched/config"
	"dentsched/di"
	"dentsched/internal/domains/booking/service"
	"dentsched/shared/logger"
	"dentsched/shared/timezone"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(cfg.Scheduling.ReminderIntervalMinutes) * time.Minute
	if interval <= 0 {
		log.Fatal().Int("minutes", cfg.Scheduling.ReminderIntervalMinutes).Msg("Reminder interval must be positive")
	}

	bookings := di.InitializeBookingService()

	log.Info().Dur("interval", interval).Msg("Starting reminder worker.")

	run(ctx, bookings)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Reminder worker stopped.")

			return
		case <-ticker.C:
			run(ctx, bookings)
		}
	}
}

func run(ctx context.Context, bookings service.Booking) {
	sent, err := bookings.SendReminders(ctx, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("Reminder run failed")

		return
	}

	log.Info().Int("sent", sent).Msg("Reminder run completed")
}
