package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-coach/internal/database"
	"career-coach/internal/domain/insight"
	"career-coach/internal/domain/user"
	"career-coach/internal/repository"

	"github.com/google/uuid"
)

// Upper bound on the whole lookup/create/update transaction, generator
// latency included.
const profileTxTimeout = 10 * time.Second

type ProfileInput struct {
	Industry   string
	Experience int
	Bio        string
	Skills     []string
}

// ProfileResult exposes both values the transaction computes; callers
// pick what they need instead of one being silently dropped.
type ProfileResult struct {
	User           user.User
	Insight        insight.IndustryInsight
	InsightCreated bool
}

type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (ProfileResult, error)
	OnboardingStatus(ctx context.Context, userID uuid.UUID) (bool, error)
}

type ProfileService struct {
	db        database.DB
	users     repository.UserRepository
	insights  repository.InsightRepository
	generator InsightGenerator
	cache     InsightCache
	logger    *log.Logger
	txTimeout time.Duration
	now       func() time.Time
}

func NewProfileService(
	db database.DB,
	users repository.UserRepository,
	insights repository.InsightRepository,
	generator InsightGenerator,
	cache InsightCache,
	logger *log.Logger,
) *ProfileService {
	if logger == nil {
		logger = log.Default()
	}
	return &ProfileService{
		db:        db,
		users:     users,
		insights:  insights,
		generator: generator,
		cache:     cache,
		logger:    logger,
		txTimeout: profileTxTimeout,
		now:       time.Now,
	}
}

// UpdateProfile writes the onboarding fields and, when the target
// industry has no insight row yet, generates and inserts one inside the
// same transaction. A generator failure aborts the whole update.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (ProfileResult, error) {
	in.Industry = strings.TrimSpace(in.Industry)
	if in.Industry == "" || in.Experience < 0 {
		return ProfileResult{}, ErrInvalidInput
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ProfileResult{}, err
		}
		return ProfileResult{}, ErrInternal
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.Begin(txCtx)
	if err != nil {
		return ProfileResult{}, s.mapTxError(txCtx, err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	rec, err := s.insights.GetByIndustry(txCtx, tx, in.Industry)
	created := false
	if errors.Is(err, insight.ErrNotFound) {
		rec, created, err = s.ensureInsight(txCtx, tx, in.Industry)
	}
	if err != nil {
		return ProfileResult{}, s.mapTxError(txCtx, err)
	}

	updated, err := s.users.UpdateProfile(txCtx, tx, userID, user.ProfileUpdate{
		Industry:   in.Industry,
		Experience: in.Experience,
		Bio:        in.Bio,
		Skills:     in.Skills,
	})
	if err != nil {
		return ProfileResult{}, s.mapTxError(txCtx, err)
	}

	if err := tx.Commit(txCtx); err != nil {
		return ProfileResult{}, s.mapTxError(txCtx, err)
	}

	// Signal downstream freshness for the dashboard rendering.
	if s.cache != nil {
		if err := s.cache.Delete(ctx, InsightCacheKey(in.Industry)); err != nil {
			s.logger.Printf("[Profile] cache invalidation failed industry=%q: %v", in.Industry, err)
		}
	}

	return ProfileResult{
		User:           sanitizeUser(updated),
		Insight:        rec,
		InsightCreated: created,
	}, nil
}

func (s *ProfileService) OnboardingStatus(ctx context.Context, userID uuid.UUID) (bool, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return false, err
		}
		return false, ErrInternal
	}
	return usr.IsOnboarded(), nil
}

func (s *ProfileService) ensureInsight(ctx context.Context, tx database.Tx, industry string) (insight.IndustryInsight, bool, error) {
	payload, err := s.generator.Generate(ctx, industry)
	if err != nil {
		return insight.IndustryInsight{}, false, err
	}

	now := s.now().UTC()
	rec, created, err := s.insights.CreateIfAbsent(ctx, tx, insight.IndustryInsight{
		ID:          uuid.New(),
		Industry:    industry,
		Payload:     payload,
		LastUpdated: now,
		NextUpdate:  now.Add(insight.RefreshInterval),
	})
	if err != nil {
		return insight.IndustryInsight{}, false, ErrPersistence
	}
	return rec, created, nil
}

// mapTxError keeps generation errors typed and turns a blown deadline
// into the timeout sentinel; everything else inside the transaction is
// a persistence failure.
func (s *ProfileService) mapTxError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	switch {
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrTimeout):
		return err
	case errors.Is(err, user.ErrNotFound):
		return err
	default:
		if isGenerationError(err) {
			return err
		}
		s.logger.Printf("[Profile] transaction failed: %v", err)
		return ErrPersistence
	}
}
