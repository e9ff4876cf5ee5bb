package insight

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("industry insight not found")

// RefreshInterval is the staleness window between generated snapshots.
const RefreshInterval = 7 * 24 * time.Hour

type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

type MarketOutlook string

const (
	OutlookPositive MarketOutlook = "Positive"
	OutlookNeutral  MarketOutlook = "Neutral"
	OutlookNegative MarketOutlook = "Negative"
)

type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// Payload is the market-analysis snapshot produced by the generator.
type Payload struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       DemandLevel   `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     MarketOutlook `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

// Validate enforces the generation contract: fixed enums and the
// minimum cardinalities the prompt demands. Completion output is
// untrusted input, so a parse alone is not enough.
func (p Payload) Validate() error {
	if len(p.SalaryRanges) < 5 {
		return fmt.Errorf("salaryRanges: want >=5 entries, got %d", len(p.SalaryRanges))
	}
	switch p.DemandLevel {
	case DemandHigh, DemandMedium, DemandLow:
	default:
		return fmt.Errorf("demandLevel: invalid value %q", p.DemandLevel)
	}
	switch p.MarketOutlook {
	case OutlookPositive, OutlookNeutral, OutlookNegative:
	default:
		return fmt.Errorf("marketOutlook: invalid value %q", p.MarketOutlook)
	}
	if len(p.TopSkills) < 5 {
		return fmt.Errorf("topSkills: want >=5 entries, got %d", len(p.TopSkills))
	}
	if len(p.KeyTrends) < 5 {
		return fmt.Errorf("keyTrends: want >=5 entries, got %d", len(p.KeyTrends))
	}
	return nil
}

// IndustryInsight is the cached snapshot for one industry. Industry is
// globally unique: one row system-wide, shared by every user in it.
type IndustryInsight struct {
	ID       uuid.UUID
	Industry string
	Payload

	LastUpdated time.Time
	NextUpdate  time.Time
}
