package dto

import (
	"time"

	"career-coach/internal/domain/insight"
)

// InsightResponse keeps the generator's payload field names on the wire.
type InsightResponse struct {
	Industry          string                 `json:"industry"`
	SalaryRanges      []insight.SalaryRange  `json:"salaryRanges"`
	GrowthRate        float64                `json:"growthRate"`
	DemandLevel       insight.DemandLevel    `json:"demandLevel"`
	TopSkills         []string               `json:"topSkills"`
	MarketOutlook     insight.MarketOutlook  `json:"marketOutlook"`
	KeyTrends         []string               `json:"keyTrends"`
	RecommendedSkills []string               `json:"recommendedSkills"`
	LastUpdated       time.Time              `json:"lastUpdated"`
	NextUpdate        time.Time              `json:"nextUpdate"`
}

func NewInsightResponse(rec insight.IndustryInsight) InsightResponse {
	return InsightResponse{
		Industry:          rec.Industry,
		SalaryRanges:      rec.SalaryRanges,
		GrowthRate:        rec.GrowthRate,
		DemandLevel:       rec.DemandLevel,
		TopSkills:         rec.TopSkills,
		MarketOutlook:     rec.MarketOutlook,
		KeyTrends:         rec.KeyTrends,
		RecommendedSkills: rec.RecommendedSkills,
		LastUpdated:       rec.LastUpdated,
		NextUpdate:        rec.NextUpdate,
	}
}

// ProfileUpdateResponse returns both values the profile transaction
// computes.
type ProfileUpdateResponse struct {
	User           UserProfileResponse `json:"user"`
	Insight        InsightResponse     `json:"insight"`
	InsightCreated bool                `json:"insight_created"`
}
