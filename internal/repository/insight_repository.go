package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-coach/internal/database"
	"career-coach/internal/domain/insight"

	"github.com/jackc/pgx/v5"
)

type InsightRepository interface {
	// GetByIndustry and CreateIfAbsent run against q so the profile
	// transaction can scope them; pass nil to use the pool.
	GetByIndustry(ctx context.Context, q database.Querier, industry string) (insight.IndustryInsight, error)

	// CreateIfAbsent inserts the record unless a row for the industry
	// already exists, then returns the surviving row. The second result
	// reports whether this call created it. Concurrent first-time
	// creators converge on one row via the unique constraint.
	CreateIfAbsent(ctx context.Context, q database.Querier, rec insight.IndustryInsight) (insight.IndustryInsight, bool, error)

	UpdateByIndustry(ctx context.Context, industry string, p insight.Payload, lastUpdated, nextUpdate time.Time) error
	ListIndustries(ctx context.Context) ([]string, error)
}

const insightColumns = `id, industry, salary_ranges, growth_rate, demand_level, top_skills,
	market_outlook, key_trends, recommended_skills, last_updated, next_update`

type PostgresInsightRepository struct {
	db database.DB
}

func NewPostgresInsightRepository(db database.DB) *PostgresInsightRepository {
	return &PostgresInsightRepository{db: db}
}

func (r *PostgresInsightRepository) GetByIndustry(ctx context.Context, q database.Querier, industry string) (insight.IndustryInsight, error) {
	if q == nil {
		q = r.db
	}
	row := q.QueryRow(ctx,
		`SELECT `+insightColumns+` FROM industry_insights WHERE industry = $1`, industry)
	return scanInsight(row)
}

func (r *PostgresInsightRepository) CreateIfAbsent(ctx context.Context, q database.Querier, rec insight.IndustryInsight) (insight.IndustryInsight, bool, error) {
	if q == nil {
		q = r.db
	}

	ranges, err := json.Marshal(rec.SalaryRanges)
	if err != nil {
		return insight.IndustryInsight{}, false, err
	}

	affected, err := q.Exec(ctx,
		`INSERT INTO industry_insights
		 (id, industry, salary_ranges, growth_rate, demand_level, top_skills,
		  market_outlook, key_trends, recommended_skills, last_updated, next_update)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (industry) DO NOTHING`,
		rec.ID, rec.Industry, ranges, rec.GrowthRate, rec.DemandLevel, rec.TopSkills,
		rec.MarketOutlook, rec.KeyTrends, rec.RecommendedSkills, rec.LastUpdated, rec.NextUpdate,
	)
	if err != nil {
		return insight.IndustryInsight{}, false, err
	}

	stored, err := r.GetByIndustry(ctx, q, rec.Industry)
	if err != nil {
		return insight.IndustryInsight{}, false, err
	}
	return stored, affected > 0, nil
}

func (r *PostgresInsightRepository) UpdateByIndustry(ctx context.Context, industry string, p insight.Payload, lastUpdated, nextUpdate time.Time) error {
	ranges, err := json.Marshal(p.SalaryRanges)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE industry_insights
		 SET salary_ranges = $2, growth_rate = $3, demand_level = $4, top_skills = $5,
		     market_outlook = $6, key_trends = $7, recommended_skills = $8,
		     last_updated = $9, next_update = $10
		 WHERE industry = $1`,
		industry, ranges, p.GrowthRate, p.DemandLevel, p.TopSkills,
		p.MarketOutlook, p.KeyTrends, p.RecommendedSkills, lastUpdated, nextUpdate,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return insight.ErrNotFound
	}
	return nil
}

func (r *PostgresInsightRepository) ListIndustries(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT industry FROM industry_insights ORDER BY industry ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var industry string
		if err := rows.Scan(&industry); err != nil {
			return nil, err
		}
		out = append(out, industry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInsight(row database.Row) (insight.IndustryInsight, error) {
	var (
		rec    insight.IndustryInsight
		ranges []byte
	)
	err := row.Scan(
		&rec.ID, &rec.Industry, &ranges, &rec.GrowthRate, &rec.DemandLevel, &rec.TopSkills,
		&rec.MarketOutlook, &rec.KeyTrends, &rec.RecommendedSkills, &rec.LastUpdated, &rec.NextUpdate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return insight.IndustryInsight{}, insight.ErrNotFound
		}
		return insight.IndustryInsight{}, err
	}
	if len(ranges) > 0 {
		if err := json.Unmarshal(ranges, &rec.SalaryRanges); err != nil {
			return insight.IndustryInsight{}, err
		}
	}
	return rec, nil
}
