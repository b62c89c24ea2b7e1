package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/config"
	"github.com/agrilync/farmtrack/internal/domain/models"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
	"github.com/agrilync/farmtrack/internal/service/export"
	"github.com/agrilync/farmtrack/internal/service/notify"
)

// Scheduler manages the progress reminder and report export jobs.
type Scheduler struct {
	cron      *cron.Cron
	store     farmstore.FarmStore
	notifier  notify.Notifier
	exportSvc *export.Service
	cfg       config.ReminderConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. The export service may be
// nil when no spreadsheet is configured; only the reminder job runs then.
func NewScheduler(cfg config.ReminderConfig, store farmstore.FarmStore, notifier notify.Notifier, exportSvc *export.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:      cron.New(opts...),
		store:     store,
		notifier:  notifier,
		exportSvc: exportSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers and launches the cron jobs.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.sendProgressReminders); err != nil {
		s.logger.Error("failed to schedule progress reminders", zap.Error(err))
	}

	if s.exportSvc != nil {
		if _, err := s.cron.AddFunc(s.cfg.ExportCronSchedule, s.exportReport); err != nil {
			s.logger.Error("failed to schedule report export", zap.Error(err))
		}
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendProgressReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	farms, err := s.store.ListFarms(ctx)
	if err != nil {
		s.logger.Error("failed to load farms for reminders", zap.Error(err))
		return
	}

	for _, farm := range farms {
		if farm.Farmer.ID == "" {
			continue
		}
		s.notifier.Notify(ctx, models.Notification{
			To:      farm.Farmer.ID,
			Title:   "Progress Reminder",
			Message: reminderMessage(farm),
			Success: true,
		})
	}

	s.logger.Info("progress reminders dispatched", zap.Int("farms", len(farms)))
}

func (s *Scheduler) exportReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.exportSvc.ExportJourneyReport(ctx); err != nil {
		s.logger.Error("failed to export journey report", zap.Error(err))
		return
	}
	s.logger.Info("journey report export completed")
}

func reminderMessage(farm models.Farm) string {
	if farm.Category() == models.CategoryLivestock {
		return fmt.Sprintf("Don't forget to update your livestock progress on %s! Track your animals' health, feed, and production activities.", farm.Name)
	}
	return fmt.Sprintf("Don't forget to update your crop progress on %s! Track your planting, growth, and harvest activities.", farm.Name)
}
