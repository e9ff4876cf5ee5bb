// Package scheduler wires up the cron job that periodically refreshes
// the industry-insight snapshots for every known industry.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-coach/internal/domain/insight"
	"career-coach/internal/repository"
	"career-coach/internal/usecase"

	"github.com/robfig/cron/v3"
)

// Generator regenerates one industry's payload.
type Generator interface {
	Generate(ctx context.Context, industry string) (insight.Payload, error)
}

// Cache invalidates the cached dashboard rendering after an overwrite.
type Cache interface {
	Delete(ctx context.Context, key string) error
}

// RefreshJob regenerates and overwrites every stored industry insight,
// regardless of the staleness window. Each industry is an independent
// unit of work: one failure is logged and the batch continues.
type RefreshJob struct {
	insights  repository.InsightRepository
	generator Generator
	cache     Cache
	logger    *log.Logger
	now       func() time.Time
}

func NewRefreshJob(insights repository.InsightRepository, generator Generator, cache Cache, logger *log.Logger) *RefreshJob {
	if logger == nil {
		logger = log.Default()
	}
	return &RefreshJob{
		insights:  insights,
		generator: generator,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes one full refresh batch.
func (j *RefreshJob) Run(ctx context.Context) error {
	industries, err := j.insights.ListIndustries(ctx)
	if err != nil {
		return fmt.Errorf("list industries: %w", err)
	}

	if len(industries) == 0 {
		j.logger.Printf("[Refresh] no industries stored, nothing to refresh")
		return nil
	}

	j.logger.Printf("[Refresh] refreshing %d industr(y/ies)", len(industries))

	failed := 0
	for _, industry := range industries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.refreshOne(ctx, industry); err != nil {
			failed++
			j.logger.Printf("[Refresh] industry %q failed: %v", industry, err)
		}
	}

	j.logger.Printf("[Refresh] batch complete: ok=%d failed=%d", len(industries)-failed, failed)
	return nil
}

func (j *RefreshJob) refreshOne(ctx context.Context, industry string) error {
	payload, err := j.generator.Generate(ctx, industry)
	if err != nil {
		return err
	}

	now := j.now().UTC()
	if err := j.insights.UpdateByIndustry(ctx, industry, payload, now, now.Add(insight.RefreshInterval)); err != nil {
		return err
	}

	if j.cache != nil {
		if err := j.cache.Delete(ctx, usecase.InsightCacheKey(industry)); err != nil {
			j.logger.Printf("[Refresh] cache invalidation failed industry=%q: %v", industry, err)
		}
	}
	return nil
}

// Scheduler wraps robfig/cron around the refresh job.
type Scheduler struct {
	cron   *cron.Cron
	job    *RefreshJob
	spec   string
	logger *log.Logger
}

// New creates a Scheduler firing on the given cron spec
// (default "0 0 * * 0", every Sunday at midnight).
func New(job *RefreshJob, spec string, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		job:    job,
		spec:   spec,
		logger: logger,
	}
}

// Start registers the job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.job.Run(ctx); err != nil {
			s.logger.Printf("[Refresh] run aborted: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("[Refresh] cron started, spec: %s", s.spec)
	return nil
}

// Stop shuts the scheduler down; running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Printf("[Refresh] cron stopped")
}
