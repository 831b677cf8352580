// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"context"
	"time"

	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// CronService is the service for the cron jobs
type CronService struct {
	cfg            *config.Config
	c              *cron.Cron
	rankingService *RankingService
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, repos *repository.Repositories, redisClient *redis.Client) *CronService {
	rankingService := NewRankingService(repos.Characters, redisClient, cfg.UploadsDir)

	return &CronService{
		cfg:            cfg,
		c:              cron.New(),
		rankingService: rankingService,
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	cs.addScheduledJob("Ranking cache WARM Job", cs.rankingCacheWarmJob, "*/5 * * * *") // Every 5 minutes

	cs.addStartupJob("Ranking cache WARM Job", cs.rankingCacheWarmJob, 2*time.Second)

	cs.c.Start()
}

// Stop stops the cron service
func (cs *CronService) Stop() {
	cs.c.Stop()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{"job": name})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{"job": name})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{"job": name})
}

// addScheduledJob adds a scheduled job to the cron service
func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED job", zaplogger.Fields{"job": name})
		job()
		zaplogger.Info("COMPLETED SCHEDULED job", zaplogger.Fields{"job": name})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED JOB", zaplogger.Fields{"job": name, "error": err.Error()})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{"job": name})
}

// rankingCacheWarmJob refreshes the cached ranking projections
func (cs *CronService) rankingCacheWarmJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := cs.rankingService.WarmCache(ctx); err != nil {
		zaplogger.Error("Ranking cache warm failed", zaplogger.Fields{"error": err.Error()})
	}
}
