package models

import (
	"time"
)

// Farm is one ranked entity on the leaderboard, including farms owned by
// registered farmers. Rows are seeded at startup and read-mostly afterwards.
type Farm struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	FarmID      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"farm_id"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	Village     string    `gorm:"type:varchar(100);not null" json:"village"`
	District    string    `gorm:"type:varchar(100);not null" json:"district"`
	State       string    `gorm:"type:varchar(100);not null" json:"state"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Cleanliness float64   `gorm:"not null" json:"cleanliness_score"`
	Biosecurity float64   `gorm:"not null" json:"biosecurity_score"`
	Efficiency  float64   `gorm:"not null" json:"production_efficiency_score"`
	OwnerID     string    `gorm:"type:varchar(64);index" json:"-"` // empty for competitor rows
	Position    int       `gorm:"not null" json:"-"`               // seed order, tie-break for ranking
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Farm) TableName() string {
	return "farms"
}

// TotalScore is the derived farm-quality score: a weighted blend of the three
// component scores plus a capacity bonus capped at 10. The weighted sum
// itself is deliberately unclamped, so a perfect farm tops out at 110.
func (f *Farm) TotalScore() float64 {
	bonus := float64(f.Capacity) / 1000.0 * 5.0
	if bonus > 10.0 {
		bonus = 10.0
	}
	return 0.3*f.Cleanliness + 0.4*f.Biosecurity + 0.3*f.Efficiency + bonus
}

// Leaderboard tier constants
const (
	TierVillage  = "village"
	TierDistrict = "district"
	TierState    = "state"
	TierNational = "national"
)

// LeaderboardEntry is a view-time row; Rank is assigned per query and never
// written back to the farm.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	FarmID      string  `json:"farm_id"`
	DisplayName string  `json:"display_name"`
	Village     string  `json:"village"`
	District    string  `json:"district"`
	State       string  `json:"state"`
	Capacity    int     `json:"capacity"`
	TotalScore  float64 `json:"total_score"`
	IsCaller    bool    `json:"is_caller_farm"`
}

// TierRank locates the caller inside one tier.
type TierRank struct {
	Tier              string `json:"tier"`
	Rank              int    `json:"rank"`
	TotalParticipants int    `json:"total_participants"`
}
