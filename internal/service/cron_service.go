// Package service contains the service layer for the Wellness Sessions API
package service

import (
	"context"
	"time"

	"github.com/arvyah/wellnessapi/internal/config"
	"github.com/arvyah/wellnessapi/pkg/utils/zaplogger"
	"github.com/robfig/cron/v3"
)

// CronService runs the background jobs: warming the published-listing cache
// and reporting session counts for operators.
type CronService struct {
	cfg            *config.Config
	c              *cron.Cron
	sessionService *SessionService
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, sessionService *SessionService) *CronService {
	return &CronService{
		cfg:            cfg,
		c:              cron.New(),
		sessionService: sessionService,
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	// ------------------------------------------------------------
	// SCHEDULED jobs
	// ------------------------------------------------------------
	cs.addScheduledJob("Published Cache WARM Job", cs.publishedCacheWarmJob, "*/5 * * * *") // Every 5 minutes
	cs.addScheduledJob("Session Stats REPORT Job", cs.sessionStatsReportJob, "0 * * * *")   // Once every hour

	// ------------------------------------------------------------
	// STARTUP jobs
	// ------------------------------------------------------------
	cs.addStartupJob("Published Cache WARM Job", cs.publishedCacheWarmJob, 2*time.Second)

	cs.c.Start()
}

// Stop stops the cron service
func (cs *CronService) Stop() {
	cs.c.Stop()
}

// addScheduledJob adds a scheduled job to the cron service
func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, job)
	if err != nil {
		zaplogger.Error("Failed to schedule job", zaplogger.Fields{"job": name, "error": err.Error()})
		return
	}
	zaplogger.Info("  * scheduled", zaplogger.Fields{"job": name, "schedule": schedule})
}

// addStartupJob adds a job run once shortly after startup
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		job()
	}()
	zaplogger.Info("  * queued at startup", zaplogger.Fields{"job": name, "delay": delay.String()})
}

// publishedCacheWarmJob refreshes the public listing cache
func (cs *CronService) publishedCacheWarmJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := cs.sessionService.WarmPublishedCache(ctx); err != nil {
		zaplogger.Error("Published Cache WARM Job failed", zaplogger.Fields{"error": err.Error()})
		return
	}
	zaplogger.Debug("Published Cache WARM Job completed")
}

// sessionStatsReportJob logs draft/published counts
func (cs *CronService) sessionStatsReportJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	drafts, published, err := cs.sessionService.CountByStatus(ctx)
	if err != nil {
		zaplogger.Error("Session Stats REPORT Job failed", zaplogger.Fields{"error": err.Error()})
		return
	}
	zaplogger.Info("Session Stats REPORT Job", zaplogger.Fields{"drafts": drafts, "published": published})
}
