package cron

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/config"
	"github.com/linguanest/lingua-back/internal/db"
)

// StartJobs schedules the daily maintenance jobs: cancelling stale pending
// bookings and refreshing teacher ratings from approved testimonials.
func StartJobs(cfg *config.Config, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	c.AddFunc("@daily", func() {
		logger.Info("running stale booking sweep")

		cancelled, err := db.ExpireStalePendingBookings(context.Background(), cfg.PendingBookingMaxAge)
		if err != nil {
			logger.Error("stale booking sweep failed", zap.Error(err))
			return
		}
		logger.Info("stale booking sweep done", zap.Int("cancelled", cancelled))
	})

	c.AddFunc("@daily", func() {
		if err := db.RecomputeTeacherRatings(context.Background()); err != nil {
			logger.Error("teacher rating refresh failed", zap.Error(err))
			return
		}
		logger.Info("teacher ratings refreshed")
	})

	c.Start()
	return c
}
