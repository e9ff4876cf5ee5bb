package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-coach/internal/domain/insight"
	"career-coach/internal/repository"

	"github.com/google/uuid"
)

// InsightGenerator produces a fresh market-analysis payload for an
// industry via the completion endpoint.
type InsightGenerator interface {
	Generate(ctx context.Context, industry string) (insight.Payload, error)
}

type InsightUsecase interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (insight.IndustryInsight, error)
}

// InsightService is the read-through path over the insight store: a
// miss triggers generation and a create; a hit is returned unchanged.
// Staleness is recorded but only the scheduled refresh acts on it.
type InsightService struct {
	users     repository.UserRepository
	insights  repository.InsightRepository
	generator InsightGenerator
	cache     InsightCache
	logger    *log.Logger
	now       func() time.Time
}

func NewInsightService(
	users repository.UserRepository,
	insights repository.InsightRepository,
	generator InsightGenerator,
	cache InsightCache,
	logger *log.Logger,
) *InsightService {
	if logger == nil {
		logger = log.Default()
	}
	return &InsightService{
		users:     users,
		insights:  insights,
		generator: generator,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *InsightService) GetForUser(ctx context.Context, userID uuid.UUID) (insight.IndustryInsight, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return insight.IndustryInsight{}, err
	}
	if !usr.IsOnboarded() {
		return insight.IndustryInsight{}, ErrOnboardingIncomplete
	}
	industry := *usr.Industry

	if s.cache != nil {
		var cached insight.IndustryInsight
		ok, err := s.cache.GetJSON(ctx, InsightCacheKey(industry), &cached)
		if err != nil {
			s.logger.Printf("[Insights] cache read failed industry=%q: %v", industry, err)
		}
		if ok {
			return cached, nil
		}
	}

	rec, err := s.insights.GetByIndustry(ctx, nil, industry)
	if errors.Is(err, insight.ErrNotFound) {
		rec, err = s.createFromGenerator(ctx, industry)
	}
	if err != nil {
		return insight.IndustryInsight{}, err
	}

	s.cacheInsight(ctx, rec)
	return rec, nil
}

func (s *InsightService) createFromGenerator(ctx context.Context, industry string) (insight.IndustryInsight, error) {
	payload, err := s.generator.Generate(ctx, industry)
	if err != nil {
		return insight.IndustryInsight{}, err
	}

	now := s.now().UTC()
	rec, created, err := s.insights.CreateIfAbsent(ctx, nil, insight.IndustryInsight{
		ID:          uuid.New(),
		Industry:    industry,
		Payload:     payload,
		LastUpdated: now,
		NextUpdate:  now.Add(insight.RefreshInterval),
	})
	if err != nil {
		return insight.IndustryInsight{}, ErrPersistence
	}
	if !created {
		// Lost the first-insight race; the surviving row wins.
		s.logger.Printf("[Insights] concurrent create for industry=%q, reusing existing row", industry)
	}
	return rec, nil
}

func (s *InsightService) cacheInsight(ctx context.Context, rec insight.IndustryInsight) {
	if s.cache == nil {
		return
	}
	ttl := time.Until(rec.NextUpdate)
	if ttl <= 0 {
		// Stale row still served on reads; keep a short cache window so
		// the scheduled refresh shows up promptly.
		ttl = time.Minute
	}
	if err := s.cache.SetJSON(ctx, InsightCacheKey(rec.Industry), rec, ttl); err != nil {
		s.logger.Printf("[Insights] cache write failed industry=%q: %v", rec.Industry, err)
	}
}
