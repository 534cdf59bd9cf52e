package models

import (
	"fmt"
	"time"
)

// FarmerProgress is the per-farmer gamification aggregate. Points never
// decrease; level-ups append badges in earn order.
type FarmerProgress struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	FarmerID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"farmer_id"`
	Points     int64     `gorm:"default:0;not null" json:"points"`
	Level      int       `gorm:"default:1;not null" json:"level"`
	Badges     []string  `gorm:"serializer:json;type:text" json:"badges"`
	VisitCount int64     `gorm:"default:0;not null" json:"visit_count"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (FarmerProgress) TableName() string {
	return "farmer_progress"
}

// NewFarmerProgress returns the initial progression state.
func NewFarmerProgress(farmerID string) *FarmerProgress {
	return &FarmerProgress{
		FarmerID: farmerID,
		Points:   0,
		Level:    1,
		Badges:   []string{},
	}
}

// NextLevelThreshold returns the points needed to reach the next level.
func (p *FarmerProgress) NextLevelThreshold() int64 {
	return int64(p.Level) * 100
}

// AddPoints credits points and runs the level-up loop until stable: each
// crossing of 100 x level advances one level and earns one badge, so a large
// single award can advance several levels at once. Returns the badges earned
// by this award in order.
func (p *FarmerProgress) AddPoints(points int) []string {
	if points <= 0 {
		return nil
	}

	p.Points += int64(points)

	var earned []string
	for p.Points >= p.NextLevelThreshold() {
		p.Level++
		badge := fmt.Sprintf("Level %d Master", p.Level)
		p.Badges = append(p.Badges, badge)
		earned = append(earned, badge)
	}
	return earned
}

// HasBadge reports whether the badge was already earned.
func (p *FarmerProgress) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// GamificationSummary is the dashboard view of a farmer's progression.
type GamificationSummary struct {
	Points             int64    `json:"points"`
	Level              int      `json:"level"`
	Badges             []string `json:"badges"`
	CompletedToday     int      `json:"completed_today"`
	TotalToday         int      `json:"total_today"`
	CompletionRate     float64  `json:"completion_rate"` // percent
	NextLevelThreshold int64    `json:"next_level_threshold"`
}
